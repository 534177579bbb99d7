//go:build unit

package provision

import (
	"context"
	"testing"

	"pptpd-setup/internal/mock"
	"pptpd-setup/internal/pkg/config"
	"pptpd-setup/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	tunnel    *mock.MockTunnelConfigurator
	secrets   *mock.MockSecretsStore
	netfilter *mock.MockNetfilterConfigurator
	system    *mock.MockSystemManager
}

func newPipelineMocks(t *testing.T) pipelineMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	return pipelineMocks{
		tunnel:    mock.NewMockTunnelConfigurator(ctrl),
		secrets:   mock.NewMockSecretsStore(ctrl),
		netfilter: mock.NewMockNetfilterConfigurator(ctrl),
		system:    mock.NewMockSystemManager(ctrl),
	}
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		LocalIP:     "192.168.99.1",
		ClientRange: "192.168.99.100-120",
		DNS:         []string{"8.8.8.8", "8.8.4.4"},
		Users:       []types.UserCredential{{Name: "user", Password: "123"}},
	}
}

func newProvisionerUnderTest(m pipelineMocks, egress *types.EgressInterface) *Provisioner {
	return NewProvisioner(testServerConfig(), egress, m.tunnel, m.secrets, m.netfilter, m.system)
}

func TestProvisioner_Run(t *testing.T) {
	egress := &types.EgressInterface{Name: "eth0", IPv4: "203.0.113.10"}

	t.Run("FullPipeline", func(t *testing.T) {
		m := newPipelineMocks(t)
		cfg := testServerConfig()

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages("pptpd", "iptables", "iptables-persistent").Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(cfg.LocalIP, cfg.ClientRange).Return(nil)
		m.tunnel.EXPECT().WriteOptions(cfg.DNS).Return(nil)
		m.secrets.EXPECT().EnsureUsers(cfg.Users).Return(nil)
		m.netfilter.EXPECT().EnableForwarding().Return(nil)
		m.netfilter.EXPECT().PersistForwarding().Return(nil)
		m.netfilter.EXPECT().LoadConntrackHelpers().Return(nil)
		m.netfilter.EXPECT().EnsureInputRules().Return(nil)
		m.netfilter.EXPECT().EnsureForwardingRules("eth0").Return(nil)
		m.netfilter.EXPECT().PersistRuleset().Return(nil)
		m.system.EXPECT().EnableService(ServiceName).Return(nil)
		m.system.EXPECT().RestartService(ServiceName).Return(nil)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("NATSkippedWithoutEgress", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().WriteOptions(gomock.Any()).Return(nil)
		m.secrets.EXPECT().EnsureUsers(gomock.Any()).Return(nil)
		m.netfilter.EXPECT().EnableForwarding().Return(nil)
		m.netfilter.EXPECT().PersistForwarding().Return(nil)
		m.netfilter.EXPECT().LoadConntrackHelpers().Return(nil)
		m.netfilter.EXPECT().EnsureInputRules().Return(nil)
		// No EnsureForwardingRules expectation: the step must be skipped
		m.netfilter.EXPECT().PersistRuleset().Return(nil)
		m.system.EXPECT().EnableService(ServiceName).Return(nil)
		m.system.EXPECT().RestartService(ServiceName).Return(nil)

		err := newProvisionerUnderTest(m, nil).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("BestEffortFailuresDoNotAbort", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(assert.AnError)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().WriteOptions(gomock.Any()).Return(nil)
		m.secrets.EXPECT().EnsureUsers(gomock.Any()).Return(nil)
		m.netfilter.EXPECT().EnableForwarding().Return(nil)
		m.netfilter.EXPECT().PersistForwarding().Return(nil)
		m.netfilter.EXPECT().LoadConntrackHelpers().Return(assert.AnError)
		m.netfilter.EXPECT().EnsureInputRules().Return(nil)
		m.netfilter.EXPECT().EnsureForwardingRules("eth0").Return(nil)
		m.netfilter.EXPECT().PersistRuleset().Return(assert.AnError)
		m.system.EXPECT().EnableService(ServiceName).Return(assert.AnError)
		m.system.EXPECT().RestartService(ServiceName).Return(nil)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("InstallFailureAborts", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "package installation failed")
	})

	t.Run("DaemonConfigFailureAborts", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "daemon configuration failed")
	})

	t.Run("ForwardingFailureAborts", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().WriteOptions(gomock.Any()).Return(nil)
		m.secrets.EXPECT().EnsureUsers(gomock.Any()).Return(nil)
		m.netfilter.EXPECT().EnableForwarding().Return(assert.AnError)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "enabling IP forwarding failed")
	})

	t.Run("RestartFailureAborts", func(t *testing.T) {
		m := newPipelineMocks(t)

		m.system.EXPECT().UpdatePackageIndex().Return(nil)
		m.system.EXPECT().InstallPackages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().EnsureServerConfig(gomock.Any(), gomock.Any()).Return(nil)
		m.tunnel.EXPECT().WriteOptions(gomock.Any()).Return(nil)
		m.secrets.EXPECT().EnsureUsers(gomock.Any()).Return(nil)
		m.netfilter.EXPECT().EnableForwarding().Return(nil)
		m.netfilter.EXPECT().PersistForwarding().Return(nil)
		m.netfilter.EXPECT().LoadConntrackHelpers().Return(nil)
		m.netfilter.EXPECT().EnsureInputRules().Return(nil)
		m.netfilter.EXPECT().EnsureForwardingRules("eth0").Return(nil)
		m.netfilter.EXPECT().PersistRuleset().Return(nil)
		m.system.EXPECT().EnableService(ServiceName).Return(nil)
		m.system.EXPECT().RestartService(ServiceName).Return(assert.AnError)

		err := newProvisionerUnderTest(m, egress).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service restart failed")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		m := newPipelineMocks(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newProvisionerUnderTest(m, egress).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
