package parsers

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/username/dopconv/src/models"
)

const (
	StrategyLabeled = "labeled"
	RateMarkerClass = "amt-change"
)

// currencyPrefixRe matches a leading currency label such as "RD$" or "US$".
var currencyPrefixRe = regexp.MustCompile(`^\s*\p{L}*\s*[$€£]?\s*`)

// LabeledParser reads the rate from the text of the first element carrying
// MarkerClass, e.g. <div class="amt-change">RD$ 62.30</div>.
type LabeledParser struct {
	MarkerClass string
}

func NewLabeledParser() *LabeledParser {
	return &LabeledParser{MarkerClass: RateMarkerClass}
}

func (p *LabeledParser) Name() string { return StrategyLabeled }

func (p *LabeledParser) Parse(document string) (models.ExtractedRate, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		// html.Parse only fails on reader errors; treat it as nothing located.
		return models.ExtractedRate{}, notFound(StrategyLabeled, MsgRateNotFound)
	}

	node := findByClass(root, p.MarkerClass)
	if node == nil {
		return models.ExtractedRate{}, notFound(StrategyLabeled, MsgRateNotFound)
	}

	text := strings.TrimSpace(textContent(node))
	value := currencyPrefixRe.ReplaceAllString(text, "")
	rate, err := parseRateText(StrategyLabeled, value)
	if err != nil {
		return models.ExtractedRate{}, invalidRate(StrategyLabeled, text, nil)
	}
	rate.Raw = text
	return rate, nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
