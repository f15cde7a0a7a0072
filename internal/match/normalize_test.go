package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PeerID", "peerid"},
		{"peer_id", "peerid"},
		{"peer-id", "peerid"},
		{"peerId", "peerid"},
		{"PEER_ID", "peerid"},
		{"SubscriptionID", "subscriptionid"},
		{"idwire/ident.Lamport", "idwireidentlamport"},
		{"", ""},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"PeerID", []string{"peer", "id"}},
		{"subscriptionId", []string{"subscription", "id"}},
		{"HTTPServer", []string{"http", "server"}},
		{"parseURL", []string{"parse", "url"}},
		{"container_type", []string{"container", "type"}},
		{"ALLCAPS", []string{"allcaps"}},
		{"AbC", []string{"ab", "c"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}
