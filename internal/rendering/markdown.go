// Package rendering renders resume records as Markdown documents
// suitable for review or further conversion.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Markdown renders the record as a Markdown document. Empty sections
// are omitted.
func Markdown(resume *types.ResumeRecord) string {
	if resume == nil {
		return ""
	}

	var sb strings.Builder

	if resume.Contact.Name != "" {
		sb.WriteString("# " + resume.Contact.Name + "\n\n")
	}
	if contact := contactLine(resume.Contact); contact != "" {
		sb.WriteString(contact + "\n\n")
	}

	if resume.Summary != "" {
		sb.WriteString("## Summary\n\n")
		sb.WriteString(resume.Summary + "\n\n")
	}

	if len(resume.Skills) > 0 {
		sb.WriteString("## Skills\n\n")
		sb.WriteString(strings.Join(resume.Skills, " · ") + "\n\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, exp := range resume.Experience {
			sb.WriteString(experienceHeading(exp) + "\n\n")
			if exp.Duration != "" {
				sb.WriteString("*" + exp.Duration + "*\n\n")
			}
			for _, line := range exp.Description {
				sb.WriteString("- " + line + "\n")
			}
			if len(exp.Description) > 0 {
				sb.WriteString("\n")
			}
		}
	}

	if len(resume.Education) > 0 {
		sb.WriteString("## Education\n\n")
		for _, edu := range resume.Education {
			sb.WriteString(educationLine(edu) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Certifications) > 0 {
		sb.WriteString("## Certifications\n\n")
		for _, cert := range resume.Certifications {
			sb.WriteString("- " + cert + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func contactLine(contact types.ContactInfo) string {
	var parts []string
	for _, part := range []string{contact.Email, contact.Phone, contact.Address, contact.LinkedIn, contact.GitHub} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

func experienceHeading(exp types.ExperienceEntry) string {
	switch {
	case exp.Position != "" && exp.Company != "":
		return "### " + exp.Position + ", " + exp.Company
	case exp.Position != "":
		return "### " + exp.Position
	case exp.Company != "":
		return "### " + exp.Company
	default:
		return "### Experience"
	}
}

func educationLine(edu types.EducationEntry) string {
	var parts []string
	if edu.Degree != "" {
		if edu.Field != "" {
			parts = append(parts, "**"+edu.Degree+", "+edu.Field+"**")
		} else {
			parts = append(parts, "**"+edu.Degree+"**")
		}
	} else if edu.Field != "" {
		parts = append(parts, "**"+edu.Field+"**")
	}
	if edu.Institution != "" {
		parts = append(parts, edu.Institution)
	}
	if edu.GraduationDate != "" {
		parts = append(parts, edu.GraduationDate)
	}
	if edu.GPA != "" {
		parts = append(parts, "GPA "+edu.GPA)
	}
	return "- " + strings.Join(parts, ", ")
}
