package services

import (
	"fmt"
	"io"
	"strings"

	"baliance.com/gooxml/document"

	"skillhive/parsers"
)

// DocxService renders an extracted profile back into a downloadable DOCX
// CV, used by the profile page's download button.
type DocxService struct{}

// NewDocxService creates a DOCX CV generator.
func NewDocxService() *DocxService {
	return &DocxService{}
}

// WriteCV writes a DOCX document built from the profile to w.
func (s *DocxService) WriteCV(profile *parsers.Profile, w io.Writer) error {
	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Title")
	name := profile.PersonalInfo.Name
	if name == "" {
		name = "Curriculum Vitae"
	}
	title.AddRun().AddText(name)

	contactParts := []string{}
	if profile.PersonalInfo.Email != "" {
		contactParts = append(contactParts, profile.PersonalInfo.Email)
	}
	if profile.PersonalInfo.Location != "" {
		contactParts = append(contactParts, profile.PersonalInfo.Location)
	}
	if len(contactParts) > 0 {
		doc.AddParagraph().AddRun().AddText(strings.Join(contactParts, " | "))
	}

	if profile.PersonalInfo.Summary != "" {
		s.addHeading(doc, "Summary")
		doc.AddParagraph().AddRun().AddText(profile.PersonalInfo.Summary)
	}

	if len(profile.Skills) > 0 {
		s.addHeading(doc, "Skills")
		doc.AddParagraph().AddRun().AddText(strings.Join(profile.Skills, ", "))
	}

	if len(profile.Experience) > 0 {
		s.addHeading(doc, "Experience")
		for _, exp := range profile.Experience {
			header := doc.AddParagraph()
			header.SetStyle("Heading2")
			line := exp.Title
			if exp.Company != "" {
				line = fmt.Sprintf("%s | %s", line, exp.Company)
			}
			if exp.Duration != "" {
				line = fmt.Sprintf("%s (%s)", line, exp.Duration)
			}
			header.AddRun().AddText(line)

			if exp.Description != "" {
				doc.AddParagraph().AddRun().AddText(exp.Description)
			}
		}
	}

	if len(profile.Education) > 0 {
		s.addHeading(doc, "Education")
		for _, edu := range profile.Education {
			line := edu.Degree
			if edu.Institution != "" {
				line = fmt.Sprintf("%s | %s", line, edu.Institution)
			}
			if edu.Year != "" {
				line = fmt.Sprintf("%s (%s)", line, edu.Year)
			}
			doc.AddParagraph().AddRun().AddText(line)
		}
	}

	if len(profile.Interests) > 0 {
		s.addHeading(doc, "Interests")
		doc.AddParagraph().AddRun().AddText(strings.Join(profile.Interests, ", "))
	}

	return doc.Save(w)
}

func (s *DocxService) addHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.SetStyle("Heading1")
	para.AddRun().AddText(text)
}
