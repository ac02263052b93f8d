package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Complaint about shoes",
			expected: "Complaint about shoes",
		},
		{
			name:     "tags stripped",
			input:    "<b>bold</b> name",
			expected: "bold name",
		},
		{
			name:     "script tag stripped",
			input:    "<script>alert(1)</script>Acme",
			expected: "alert(1)Acme",
		},
		{
			name:     "special characters escaped",
			input:    `Johnson & Sons "Ltd"`,
			expected: "Johnson &amp; Sons &#34;Ltd&#34;",
		},
		{
			name:     "tags removed before escaping",
			input:    "<img src=x>name",
			expected: "name",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeString(tt.input))
		})
	}
}

func TestSanitizeString_Idempotent(t *testing.T) {
	// Stripping already-sanitized output must not change it further at the
	// tag level: no new tags can appear after escaping.
	inputs := []string{
		"<b>bold</b>",
		"a < b > c",
		"plain",
		"<<nested>>",
	}
	for _, in := range inputs {
		once := tagPattern.ReplaceAllString(in, "")
		twice := tagPattern.ReplaceAllString(once, "")
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestSanitize_WalksNestedStructures(t *testing.T) {
	input := map[string]interface{}{
		"complaintNumber": "<i>CN-1</i>",
		"clientId":        float64(7),
		"differences": map[string]interface{}{
			"from": "<b>1</b>",
			"to":   float64(2),
		},
		"tags": []interface{}{"<u>a</u>", float64(3)},
	}

	out := Sanitize(input).(map[string]interface{})

	assert.Equal(t, "CN-1", out["complaintNumber"])
	assert.Equal(t, float64(7), out["clientId"])
	diff := out["differences"].(map[string]interface{})
	assert.Equal(t, "1", diff["from"])
	assert.Equal(t, float64(2), diff["to"])
	tags := out["tags"].([]interface{})
	assert.Equal(t, "a", tags[0])
	assert.Equal(t, float64(3), tags[1])
}

func TestSanitizeRequest_DoesNotMutateInput(t *testing.T) {
	input := map[string]interface{}{"complaintNumber": "<b>CN-1</b>"}
	out := SanitizeRequest(input)

	assert.Equal(t, "CN-1", out["complaintNumber"])
	assert.Equal(t, "<b>CN-1</b>", input["complaintNumber"])
}
