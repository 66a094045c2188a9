package wiki

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flattenExtract converts the HTML extract into plain text. The summary is
// the lead section, everything before the first h2 heading; pages without
// section headings yield a summary equal to the full text.
func flattenExtract(htmlExtract string) (text, summary string, err error) {
	if htmlExtract == "" {
		return "", "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlExtract))
	if err != nil {
		return "", "", err
	}

	var full, lead strings.Builder
	pastLead := false

	doc.Find("body").Children().Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) == "h2" {
			pastLead = true
		}
		chunk := strings.TrimSpace(s.Text())
		if chunk == "" {
			return
		}
		full.WriteString(chunk)
		full.WriteString("\n")
		if !pastLead {
			lead.WriteString(chunk)
			lead.WriteString("\n")
		}
	})

	return strings.TrimSpace(full.String()), strings.TrimSpace(lead.String()), nil
}
