package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkedlift/engagement-backend/internal/service"
)

func TestRenderTemplate(t *testing.T) {
	got := service.RenderTemplate("Hi {name}, great work in {industry}!", map[string]string{
		"name":     "Amina",
		"industry": "SaaS",
	})
	assert.Equal(t, "Hi Amina, great work in SaaS!", got)
}

func TestRenderTemplateEmptyValueSubstitutesVerbatim(t *testing.T) {
	got := service.RenderTemplate("Hi {name}, welcome.", map[string]string{
		"name": "",
	})
	assert.Equal(t, "Hi , welcome.", got)
}

func TestRenderTemplateUnknownPlaceholderSurvives(t *testing.T) {
	got := service.RenderTemplate("Hello {name}", map[string]string{"company": "CloudKit"})
	assert.Equal(t, "Hello {name}", got)
}
