package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentKind(t *testing.T) {
	tests := []struct {
		input   string
		want    DocumentKind
		wantErr bool
	}{
		{input: "resume", want: KindResume},
		{input: "cv", want: KindResume},
		{input: "cover_letter", want: KindCoverLetter},
		{input: "cover-letter", want: KindCoverLetter},
		{input: "letter", want: KindCoverLetter},
		{input: "memo", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDocumentKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentKinds_TabOrder(t *testing.T) {
	assert.Equal(t, []DocumentKind{KindResume, KindCoverLetter}, DocumentKinds())
	assert.Equal(t, "Resume", KindResume.Title())
	assert.Equal(t, "Cover Letter", KindCoverLetter.Title())
}

func TestOperationStatus(t *testing.T) {
	tests := []struct {
		status OperationStatus
		name   string
		busy   bool
	}{
		{StatusIdle, "idle", false},
		{StatusExtractingJob, "extracting_job", true},
		{StatusParsingResume, "parsing_resume", true},
		{StatusOptimizing, "optimizing", true},
		{StatusGeneratingCoverLetter, "generating_cover_letter", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.busy, tt.status.Busy())
			if tt.busy {
				assert.NotEmpty(t, tt.status.Label())
			} else {
				assert.Empty(t, tt.status.Label())
			}
		})
	}

	assert.Equal(t, "unknown", OperationStatus(99).String())
}
