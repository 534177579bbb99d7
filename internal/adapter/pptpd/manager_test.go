//go:build unit

package pptpd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pptpd-setup/internal/adapter/infrastructure/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string, string) {
	t.Helper()
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pptpd.conf")
	optionsPath := filepath.Join(tempDir, "pptpd-options")
	return NewManager(configPath, optionsPath, file.NewManagerAdapter()), configPath, optionsPath
}

func backupsFor(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".bak.*")
	require.NoError(t, err)
	return matches
}

func TestManager_EnsureServerConfig(t *testing.T) {
	t.Run("CreatesFreshFile", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)

		err := manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120")
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "localip 192.168.99.1\nremoteip 192.168.99.100-120\n", string(content))
		assert.Empty(t, backupsFor(t, configPath), "no backup expected for a fresh file")
	})

	t.Run("PreservesUnrelatedLines", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		existing := "# PPTP daemon configuration\noption /etc/ppp/pptpd-options\nconnections 100\nlocalip 10.9.9.1\nremoteip 10.9.9.100-200\n"
		require.NoError(t, os.WriteFile(configPath, []byte(existing), 0644))

		err := manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120")
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t,
			"# PPTP daemon configuration\noption /etc/ppp/pptpd-options\nconnections 100\nlocalip 192.168.99.1\nremoteip 192.168.99.100-120\n",
			string(content))
	})

	t.Run("ReplacesIndentedDirectives", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		require.NoError(t, os.WriteFile(configPath, []byte("  localip 10.0.0.1\n\tremoteip 10.0.0.2-9\n"), 0644))

		err := manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120")
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "localip 192.168.99.1\nremoteip 192.168.99.100-120\n", string(content))
	})

	t.Run("KeepsCommentedDirectives", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		require.NoError(t, os.WriteFile(configPath, []byte("#localip 10.0.0.1\n"), 0644))

		err := manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120")
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "#localip 10.0.0.1\n"))
	})

	t.Run("NormalizesMissingTrailingNewline", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		require.NoError(t, os.WriteFile(configPath, []byte("connections 100"), 0644))

		err := manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120")
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "connections 100\nlocalip 192.168.99.1\nremoteip 192.168.99.100-120\n", string(content))
	})

	t.Run("RerunIsByteIdentical", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		require.NoError(t, os.WriteFile(configPath, []byte("option /etc/ppp/pptpd-options\nlocalip old\n"), 0644))

		require.NoError(t, manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120"))
		first, err := os.ReadFile(configPath)
		require.NoError(t, err)

		require.NoError(t, manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120"))
		second, err := os.ReadFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})

	t.Run("BacksUpExistingFile", func(t *testing.T) {
		manager, configPath, _ := newTestManager(t)
		existing := "localip 10.9.9.1\n"
		require.NoError(t, os.WriteFile(configPath, []byte(existing), 0644))

		require.NoError(t, manager.EnsureServerConfig("192.168.99.1", "192.168.99.100-120"))

		backups := backupsFor(t, configPath)
		require.Len(t, backups, 1)
		content, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, existing, string(content))
	})
}

func TestManager_WriteOptions(t *testing.T) {
	t.Run("WritesTemplate", func(t *testing.T) {
		manager, _, optionsPath := newTestManager(t)

		err := manager.WriteOptions([]string{"8.8.8.8", "8.8.4.4"})
		require.NoError(t, err)

		content, err := os.ReadFile(optionsPath)
		require.NoError(t, err)
		text := string(content)
		assert.True(t, strings.HasPrefix(text, "# Generated by pptpd-setup\n"))
		assert.Contains(t, text, "name pptpd\n")
		assert.Contains(t, text, "require-mschap-v2\n")
		assert.Contains(t, text, "require-mppe-128\n")
		assert.Contains(t, text, "proxyarp\n")
		assert.Contains(t, text, "ms-dns 8.8.8.8\nms-dns 8.8.4.4\n")
	})

	t.Run("DNSOrderPreservedAndDeduplicated", func(t *testing.T) {
		manager, _, optionsPath := newTestManager(t)

		err := manager.WriteOptions([]string{"1.1.1.1", "8.8.8.8", "1.1.1.1", ""})
		require.NoError(t, err)

		content, err := os.ReadFile(optionsPath)
		require.NoError(t, err)

		var dnsLines []string
		for _, line := range strings.Split(string(content), "\n") {
			if strings.HasPrefix(line, "ms-dns ") {
				dnsLines = append(dnsLines, line)
			}
		}
		assert.Equal(t, []string{"ms-dns 1.1.1.1", "ms-dns 8.8.8.8"}, dnsLines)
	})

	t.Run("NoDNSServers", func(t *testing.T) {
		manager, _, optionsPath := newTestManager(t)

		require.NoError(t, manager.WriteOptions(nil))

		content, err := os.ReadFile(optionsPath)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "ms-dns")
	})

	t.Run("OverwritesAndBacksUp", func(t *testing.T) {
		manager, _, optionsPath := newTestManager(t)
		require.NoError(t, os.WriteFile(optionsPath, []byte("stale content\n"), 0644))

		require.NoError(t, manager.WriteOptions([]string{"8.8.8.8"}))

		content, err := os.ReadFile(optionsPath)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "stale content")

		backups := backupsFor(t, optionsPath)
		require.Len(t, backups, 1)
		backup, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, "stale content\n", string(backup))
	})

	t.Run("RerunIsByteIdentical", func(t *testing.T) {
		manager, _, optionsPath := newTestManager(t)

		require.NoError(t, manager.WriteOptions([]string{"8.8.8.8"}))
		first, err := os.ReadFile(optionsPath)
		require.NoError(t, err)

		require.NoError(t, manager.WriteOptions([]string{"8.8.8.8"}))
		second, err := os.ReadFile(optionsPath)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})
}
