package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrasetu/pkg/utils"
)

func ids(t *testing.T, svc DestinationServiceInterface, category, search, mood string) []string {
	t.Helper()
	list, err := svc.List(category, search, mood)
	require.NoError(t, err)
	var out []string
	for _, d := range list {
		out = append(out, d.ID)
	}
	return out
}

func TestDestinationList(t *testing.T) {
	svc := NewDestinationService()

	assert.Len(t, ids(t, svc, "", "", ""), len(gujaratDestinations))
	assert.Len(t, ids(t, svc, "all", "", ""), len(gujaratDestinations))
	assert.ElementsMatch(t, []string{"somnath", "dwarka"}, ids(t, svc, "spiritual", "", ""))
	assert.ElementsMatch(t, []string{"dholavira", "hodka", "bhujodi"}, ids(t, svc, "", "kutch", ""))
	assert.Equal(t, []string{"hodka"}, ids(t, svc, "rural", "EMBROIDERY", ""))
	assert.Equal(t, []string{"saputara"}, ids(t, svc, "", "સાપુતારા", ""))
	assert.Empty(t, ids(t, svc, "nature", "stepwell", ""))
}

func TestDestinationListByMood(t *testing.T) {
	svc := NewDestinationService()

	assert.ElementsMatch(t, []string{"dholavira", "gir", "champaner", "ahmedabad-pols"}, ids(t, svc, "", "", "adventurous"))
	assert.ElementsMatch(t, []string{"hodka", "bhujodi", "saputara", "somnath", "dwarka"}, ids(t, svc, "", "", "Relaxing"))
	assert.ElementsMatch(t, []string{"somnath"}, ids(t, svc, "spiritual", "", "instagrammable"))
	assert.ElementsMatch(t, []string{"saputara", "gir"}, ids(t, svc, "nature", "", "family-friendly"))

	for _, mood := range destinationMoods {
		assert.NotEmpty(t, ids(t, svc, "", "", mood), mood)
	}

	_, err := svc.List("", "", "curious")
	assert.ErrorIs(t, err, utils.ErrInvalidMood)
}

func TestDestinationCategories(t *testing.T) {
	svc := NewDestinationService()

	cats := svc.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, "all", cats[0].Value)
	assert.Equal(t, len(gujaratDestinations), cats[0].Count)

	total := 0
	for _, c := range cats[1:] {
		assert.Len(t, ids(t, svc, c.Value, "", ""), c.Count, c.Value)
		assert.NotEmpty(t, c.LabelGu)
		total += c.Count
	}
	assert.Equal(t, len(gujaratDestinations), total)
}

func TestDestinationGet(t *testing.T) {
	svc := NewDestinationService()

	d, err := svc.Get("gir")
	require.NoError(t, err)
	assert.Equal(t, "Gir National Park", d.Name)

	d.Moods[0] = "changed"
	again, _ := svc.Get("gir")
	assert.NotEqual(t, "changed", again.Moods[0])

	_, err = svc.Get("atlantis")
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestDestinationMatch(t *testing.T) {
	svc := NewDestinationService()

	tests := []struct {
		spoken string
		want   string
	}{
		{"take me to Dholavira please", "dholavira"},
		{"somnath", "somnath"},
		{"મારે દ્વારકા જવું છે", "dwarka"},
		{"Rani", "rani-ki-vav"},
	}
	for _, tt := range tests {
		d, ok := svc.Match(tt.spoken)
		require.True(t, ok, tt.spoken)
		assert.Equal(t, tt.want, d.ID, tt.spoken)
	}

	_, ok := svc.Match("   ")
	assert.False(t, ok)
	_, ok = svc.Match("Mumbai airport")
	assert.False(t, ok)
}
