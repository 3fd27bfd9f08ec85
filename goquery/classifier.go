// Package goquery classifies export fragments with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prospero"
)

// Ensure Classifier implements prospero.Classifier at compile time.
var _ prospero.Classifier = (*Classifier)(nil)

// reportPrefixes start the publication name of report excerpts.
var reportPrefixes = []string{"Rapports -", "Reports -"}

// Classifier recognizes the stubs Europresse mixes with full articles:
// links to content it does not host, report excerpts and embedded tweets.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the kind of the fragment.
// Fragments that cannot be parsed are reported as plain so that the article
// parser gets to fail loudly on them.
func (c *Classifier) Classify(fragment string) prospero.Kind {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return prospero.KindPlain
	}

	if c.hasSelector(doc, "p.link-not-hosted") {
		return prospero.KindLink
	}
	if c.isReport(doc) {
		return prospero.KindReport
	}
	if c.hasSelector(doc, "div.twitter") {
		return prospero.KindTweet
	}
	return prospero.KindPlain
}

// hasSelector checks if the document contains at least one element matching the selector.
func (c *Classifier) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// isReport checks the publication names of the fragment for a report prefix.
func (c *Classifier) isReport(doc *goquery.Document) bool {
	found := false
	doc.Find(".DocPublicationName").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name := strings.TrimLeft(s.Text(), " \t\r\n")
		for _, prefix := range reportPrefixes {
			if strings.HasPrefix(name, prefix) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
