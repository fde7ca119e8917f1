package postgres

import (
	"testing"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildJobFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.JobFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name: "empty",
		},
		{
			name:      "level only",
			filter:    domain.JobFilter{ExperienceLevel: domain.ExperienceFresher},
			wantWhere: "WHERE j.experience_level = $1",
			wantArgs:  []any{domain.ExperienceFresher},
		},
		{
			name:      "location only",
			filter:    domain.JobFilter{Location: "Pune"},
			wantWhere: "WHERE j.location ILIKE $1",
			wantArgs:  []any{"%Pune%"},
		},
		{
			name:      "search reuses one placeholder",
			filter:    domain.JobFilter{Search: "go"},
			wantWhere: "WHERE (j.title ILIKE $1 OR j.description ILIKE $1 OR j.skills ILIKE $1)",
			wantArgs:  []any{"%go%"},
		},
		{
			name:      "all predicates numbered in order",
			filter:    domain.JobFilter{ExperienceLevel: domain.ExperienceExperienced, Location: "bengaluru", Search: "java"},
			wantWhere: "WHERE j.experience_level = $1 AND j.location ILIKE $2 AND (j.title ILIKE $3 OR j.description ILIKE $3 OR j.skills ILIKE $3)",
			wantArgs:  []any{domain.ExperienceExperienced, "%bengaluru%", "%java%"},
		},
		{
			name:      "location and search skip the level slot",
			filter:    domain.JobFilter{Location: "x", Search: "y"},
			wantWhere: "WHERE j.location ILIKE $1 AND (j.title ILIKE $2 OR j.description ILIKE $2 OR j.skills ILIKE $2)",
			wantArgs:  []any{"%x%", "%y%"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildJobFilter(tc.filter)
			require.Equal(t, tc.wantWhere, where)
			require.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestContainsPattern_EscapesLikeMetacharacters(t *testing.T) {
	tests := map[string]string{
		"react":    `%react%`,
		"100%":     `%100\%%`,
		"c_sharp":  `%c\_sharp%`,
		`back\sl`:  `%back\\sl%`,
		"%_\\":     `%\%\_\\%`,
		"":         `%%`,
	}
	for in, want := range tests {
		require.Equal(t, want, containsPattern(in), "input %q", in)
	}
}
