package content

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceSlugsAreFormValues(t *testing.T) {
	slug := regexp.MustCompile(`^[a-z0-9-]+$`)
	for _, s := range Services {
		assert.Regexp(t, slug, s.Slug)
		assert.NotEmpty(t, ProjectsForService(s.Slug), "service %s has no works", s.Slug)
	}
}

func TestServiceBySlug(t *testing.T) {
	s, ok := ServiceBySlug("ad-films")
	assert.True(t, ok)
	assert.Equal(t, "Ad Films", s.Title)

	_, ok = ServiceBySlug("nope")
	assert.False(t, ok)
}

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "Motion Design", ServiceLabel("motion-design"))
	assert.Equal(t, "Brand Films", ServiceLabel("brand-films"))
}

func TestPortfolioCategories(t *testing.T) {
	cats := PortfolioCategories()
	assert.Equal(t, "All", cats[0])
	assert.Contains(t, cats, "Ad Film")
	assert.Len(t, cats, 7)
}

func TestProjectIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range Projects {
		assert.False(t, seen[p.ID], "duplicate project id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestBehindTheBuildKeys(t *testing.T) {
	slug := regexp.MustCompile(`^[a-z0-9-]+$`)
	for _, p := range BehindTheBuild {
		assert.Regexp(t, slug, p.ID)
		assert.NotEmpty(t, p.Images, p.ID)
	}
	assert.Equal(t, "behind-the-build/samrat-bts/3.avif", BehindTheBuild[2].ImageKey("3.avif"))
}
