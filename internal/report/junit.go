package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"labctl/internal/domain"
)

type junitProblem struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

func (p *junitProblem) text() string {
	if p.Message != "" {
		return p.Message
	}
	return p.Body
}

type junitCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Failure   *junitProblem `xml:"failure"`
	Error     *junitProblem `xml:"error"`
}

func (c junitCase) title() string {
	var parts []string
	for _, p := range []string{c.ClassName, c.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Pytest test failed"
	}
	return strings.Join(parts, ".")
}

// ParseJUnit extracts failing test cases from a JUnit-style results file.
// A testcase fails if it carries a <failure> or <error> child; the message
// attribute wins over the element text.
func ParseJUnit(r io.Reader) ([]domain.TestFailure, error) {
	var failures []domain.TestFailure

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse junit results: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "testcase" {
			continue
		}

		var c junitCase
		if err := dec.DecodeElement(&c, &se); err != nil {
			return nil, fmt.Errorf("parse junit results: %w", err)
		}

		problem := c.Failure
		if problem == nil {
			problem = c.Error
		}
		if problem == nil {
			continue
		}
		failures = append(failures, domain.TestFailure{
			Title:   c.title(),
			Message: strings.TrimSpace(problem.text()),
		})
	}

	return failures, nil
}
