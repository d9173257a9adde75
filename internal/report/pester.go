package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"labctl/internal/domain"
)

// pesterCase covers both schemas emitted by Pester runners: NUnitXml
// <test-case result="Failed"> with <failure><message>, and VSTest
// <UnitTestResult outcome="Failed"> with <Output><ErrorInfo><Message>.
type pesterCase struct {
	Name     string `xml:"name,attr"`
	TestName string `xml:"testName,attr"`
	Result   string `xml:"result,attr"`
	Outcome  string `xml:"outcome,attr"`
	Failure  struct {
		Message string `xml:"message"`
	} `xml:"failure"`
	Output struct {
		ErrorInfo struct {
			Message string `xml:"Message"`
		} `xml:"ErrorInfo"`
	} `xml:"Output"`
}

func (c pesterCase) failed() bool {
	return c.Result == "Failed" || c.Result == "Failure" || c.Outcome == "Failed"
}

func (c pesterCase) title() string {
	if c.Name != "" {
		return c.Name
	}
	if c.TestName != "" {
		return c.TestName
	}
	return "Pester test failed"
}

func (c pesterCase) message() string {
	if c.Failure.Message != "" {
		return c.Failure.Message
	}
	return c.Output.ErrorInfo.Message
}

// ParsePester extracts failing test cases from a Pester results file.
// Test-case elements may appear at any nesting depth.
func ParsePester(r io.Reader) ([]domain.TestFailure, error) {
	var failures []domain.TestFailure

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse pester results: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "test-case" && se.Name.Local != "UnitTestResult" {
			continue
		}

		var c pesterCase
		if err := dec.DecodeElement(&c, &se); err != nil {
			return nil, fmt.Errorf("parse pester results: %w", err)
		}
		if !c.failed() {
			continue
		}
		failures = append(failures, domain.TestFailure{
			Title:   c.title(),
			Message: strings.TrimSpace(c.message()),
		})
	}

	return failures, nil
}
