package catalog_test

import (
	"testing"
	"time"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSeasonForMonth(t *testing.T) {
	winter := []time.Month{time.November, time.December, time.January, time.February}
	for _, m := range winter {
		assert.Equal(t, catalog.SeasonWinter, catalog.SeasonForMonth(m), m.String())
	}

	summer := []time.Month{
		time.March, time.April, time.May, time.June,
		time.July, time.August, time.September, time.October,
	}
	for _, m := range summer {
		assert.Equal(t, catalog.SeasonSummer, catalog.SeasonForMonth(m), m.String())
	}
}

func TestProduct_EligibleForSeason(t *testing.T) {
	t.Run("exact_match", func(t *testing.T) {
		p := catalog.Product{Season: catalog.SeasonWinter}
		assert.True(t, p.EligibleForSeason(catalog.SeasonWinter))
		assert.False(t, p.EligibleForSeason(catalog.SeasonSummer))
	})

	t.Run("all_season_matches_everything", func(t *testing.T) {
		p := catalog.Product{Season: catalog.SeasonAllSeason}
		assert.True(t, p.EligibleForSeason(catalog.SeasonWinter))
		assert.True(t, p.EligibleForSeason(catalog.SeasonSummer))
	})
}
