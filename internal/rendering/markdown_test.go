package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestMarkdownFullRecord(t *testing.T) {
	resume := &types.ResumeRecord{
		Contact: types.ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "+1 555 0100",
		},
		Summary: "Backend engineer focused on reliable APIs.",
		Skills:  []string{"Go", "PostgreSQL"},
		Experience: []types.ExperienceEntry{
			{
				Company:     "Acme",
				Position:    "Senior Engineer",
				Duration:    "2019 - Present",
				Description: []string{"Built the billing system", "Led a team of five"},
			},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "BSc", Field: "Computer Science", GPA: "3.8"},
		},
		Certifications: []string{"AWS Solutions Architect"},
	}

	md := Markdown(resume)

	assert.True(t, strings.HasPrefix(md, "# Jane Doe\n"))
	assert.Contains(t, md, "jane@example.com | +1 555 0100")
	assert.Contains(t, md, "## Summary\n\nBackend engineer focused on reliable APIs.")
	assert.Contains(t, md, "Go · PostgreSQL")
	assert.Contains(t, md, "### Senior Engineer, Acme")
	assert.Contains(t, md, "*2019 - Present*")
	assert.Contains(t, md, "- Built the billing system\n- Led a team of five")
	assert.Contains(t, md, "**BSc, Computer Science**, State University, GPA 3.8")
	assert.Contains(t, md, "- AWS Solutions Architect")
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	resume := &types.ResumeRecord{
		Contact: types.ContactInfo{Name: "Jane Doe"},
		Skills:  []string{"Go"},
	}

	md := Markdown(resume)

	assert.NotContains(t, md, "## Summary")
	assert.NotContains(t, md, "## Experience")
	assert.NotContains(t, md, "## Education")
	assert.NotContains(t, md, "## Certifications")
	assert.Contains(t, md, "## Skills")
}

func TestMarkdownNilRecord(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
}

func TestMarkdownEndsWithSingleNewline(t *testing.T) {
	md := Markdown(&types.ResumeRecord{Contact: types.ContactInfo{Name: "Jane"}})
	assert.True(t, strings.HasSuffix(md, "\n"))
	assert.False(t, strings.HasSuffix(md, "\n\n"))
}
