package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd(t *testing.T) {
	snapshotPath := filepath.Join(t.TempDir(), "stake.json")
	doc := `{"result": [
		{"pubkey": "acc1", "account": {"lamports": 1000, "data": {"parsed": {"info": {"stake": {"delegation": {"voter": "validator1", "stake": "900", "activationEpoch": "10", "deactivationEpoch": "18446744073709551615"}}}}}}},
		{"pubkey": "acc2", "account": {"lamports": 2000, "data": {"parsed": {"info": {}}}}}
	]}`
	require.NoError(t, os.WriteFile(snapshotPath, []byte(doc), 0o600))
	writeTestConfig(t, snapshotPath)

	var out bytes.Buffer
	cmd := StatsCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--epoch", "700"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Snapshot statistics (epoch 700)")
	assert.Contains(t, out.String(), "Total accounts: 2")
	assert.Contains(t, out.String(), "Total lamports: 3000")
	assert.Contains(t, out.String(), "Total delegated (lamports): 900")
	assert.Contains(t, out.String(), "ACTIVE: 1 accounts")
	assert.Contains(t, out.String(), "INACTIVE: 1 accounts")
}

func TestStatsCmd_EpochRequired(t *testing.T) {
	writeTestConfig(t, filepath.Join(t.TempDir(), "unused.json"))

	var out, errOut bytes.Buffer
	cmd := StatsCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestPoolsCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := PoolsCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "jito")
	assert.Contains(t, out.String(), "6iQKfEyhr3bZMotVkW6beNZz5CPAkiwvgV2CTje9pVSS")
}
