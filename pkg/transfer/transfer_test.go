package transfer_test

import (
	"testing"

	"github.com/gtdbfetch/gtdbfetch/internal/iotransfer"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

// TestProbeContract verifies that the iotransfer probe satisfies
// the transfer.Probe type.
func TestProbeContract(t *testing.T) {
	var _ transfer.Probe = iotransfer.NewProbe(config.New())
}
