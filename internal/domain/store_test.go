package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeIdentity = "Demo, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"

func TestStoreProvidesMatchingIdentity(t *testing.T) {
	image := []byte{0x4D, 0x5A, 0x90, 0x00}
	store := NewAssemblyStore(storeIdentity, image)

	provided, err := store.Provide(BindRequest{
		AppDomainID:        2,
		ReferencedIdentity: storeIdentity,
		PostPolicyIdentity: storeIdentity,
	})
	require.NoError(t, err)
	assert.Equal(t, image, provided.Image)
	assert.EqualValues(t, 800, provided.AssemblyID)
	assert.Zero(t, provided.Context)
}

func TestStoreMatchesPostPolicyIdentityOnly(t *testing.T) {
	store := NewAssemblyStore(storeIdentity, []byte{1})

	// The referenced identity is pre-policy and must not participate in
	// the decision.
	provided, err := store.Provide(BindRequest{
		ReferencedIdentity: "Demo, Version=0.9.0.0, Culture=neutral, PublicKeyToken=null",
		PostPolicyIdentity: storeIdentity,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, provided.Image)
}

func TestStoreDeclinesForeignIdentity(t *testing.T) {
	store := NewAssemblyStore(storeIdentity, []byte{1})

	_, err := store.Provide(BindRequest{
		PostPolicyIdentity: "System.Data, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089",
	})
	require.ErrorIs(t, err, ErrAssemblyNotRecognized)
	assert.Contains(t, err.Error(), "System.Data")
}

func TestStoreDeclinesCaseMismatch(t *testing.T) {
	store := NewAssemblyStore(storeIdentity, []byte{1})

	_, err := store.Provide(BindRequest{
		PostPolicyIdentity: "demo, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null",
	})
	require.ErrorIs(t, err, ErrAssemblyNotRecognized)
}

func TestStoreAlwaysDeclinesModules(t *testing.T) {
	store := NewAssemblyStore(storeIdentity, []byte{1})

	err := store.ProvideModule(storeIdentity, "Demo.netmodule")
	require.ErrorIs(t, err, ErrModuleNotRecognized)
}
