package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter_Censor(t *testing.T) {
	req := require.New(t)
	filter, err := NewFilter([]string{"badword", "slur"}, '*')
	req.NoError(err)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "clean content passes through",
			content: "hello team, standup in 5",
			want:    "hello team, standup in 5",
		},
		{
			name:    "plain match",
			content: "this is a badword here",
			want:    "this is a ******* here",
		},
		{
			name:    "case insensitive",
			content: "BadWord",
			want:    "*******",
		},
		{
			name:    "split spelling masks the whole span",
			content: "b a d w o r d",
			want:    "*************",
		},
		{
			name:    "decorated spelling is still caught",
			content: "b.a.d.w.o.r.d",
			want:    "*************",
		},
		{
			name:    "multiple words",
			content: "badword and slur",
			want:    "******* and ****",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, filter.Censor(tt.content))
		})
	}
}

func TestFilter_CensorPreservesSurroundingRunes(t *testing.T) {
	req := require.New(t)
	filter, err := NewFilter([]string{"badword"}, '#')
	req.NoError(err)

	req.Equal("café ####### café", filter.Censor("café badword café"))
}
