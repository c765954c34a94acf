package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clrhost-cli/internal/domain"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	first := domain.Profile{
		Name:           "payload",
		Runtime:        domain.RuntimeV4,
		DomainName:     "Payload",
		Args:           []string{"--mode", "fast"},
		RedirectOutput: true,
		PatchExit:      true,
	}
	second := domain.Profile{
		Name:    "legacy",
		Runtime: domain.RuntimeV2,
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByName(context.Background(), "payload")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Profile{first, second}, profiles)
}

func TestRepositorySaveReplacesExistingProfile(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "payload", PatchExit: true}))
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "payload", RedirectOutput: true}))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].RedirectOutput)
	assert.False(t, profiles[0].PatchExit)
}

func TestRepositorySaveRejectsEmptyName(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Profile{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "profile name is empty")
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "missing", "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = repo.GetByName(context.Background(), "payload")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(profilesPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[profiles]]",
		"name = \"legacy\"",
		"runtime = \"v2\"",
		"patch_exit = true",
		"",
	}, "\n")), 0o600))

	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	got, err := repo.GetByName(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, domain.RuntimeV2, got.Runtime)
	assert.True(t, got.PatchExit)
	assert.False(t, got.RedirectOutput)
}

func TestRepositoryRejectsUnknownRuntimeString(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(profilesPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[profiles]]",
		"name = \"broken\"",
		"runtime = \"v9\"",
		"",
	}, "\n")), 0o600))

	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	_, err = repo.GetByName(context.Background(), "broken")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown runtime version")
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(profilesPath, []byte("profiles = ["), 0o600))

	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode profiles file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = repo.Save(ctx, domain.Profile{Name: "payload"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllProfiles(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")

	newRepo := func() *Repository {
		config := viper.New()
		config.Set("profiles.path", profilesPath)
		repo, err := NewRepository(config)
		require.NoError(t, err)
		return repo
	}

	repoA := newRepo()
	repoB := newRepo()

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.Profile{Name: "a-" + strconv.Itoa(i)})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.Profile{Name: "b-" + strconv.Itoa(i)})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	profiles, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, perRepoWrites*2)
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(profilesPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"profiles = []",
		"",
	}, "\n")), 0o600))

	config := viper.New()
	config.Set("profiles.path", profilesPath)
	repo, err := NewRepository(config)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profiles schema version")
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	config := viper.New()
	config.Set("profiles.path", profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "payload"}))

	data, err := os.ReadFile(profilesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}
