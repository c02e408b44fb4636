package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_StartsAtRoot(t *testing.T) {
	store := NewStore()
	route := store.Current()
	assert.Equal(t, "/", route.Path)
	assert.Empty(t, route.Params)
}

func TestStore_NavigateReplacesPathAndParams(t *testing.T) {
	store := NewStore()
	store.Navigate("/counselor", Params{"tab": "pending"})

	route := store.Current()
	assert.Equal(t, "/counselor", route.Path)
	assert.Equal(t, "pending", route.Params["tab"])
}

func TestStore_NilParamsKeepsExistingBag(t *testing.T) {
	store := NewStore()
	store.Navigate("/student", Params{"highlight": "2"})
	store.Navigate("/student/history", nil)

	route := store.Current()
	assert.Equal(t, "/student/history", route.Path)
	assert.Equal(t, "2", route.Params["highlight"])
}

func TestStore_NonNilParamsReplaceWholesale(t *testing.T) {
	store := NewStore()
	store.Navigate("/admin", Params{"from": "login", "tab": "workload"})
	store.Navigate("/admin", Params{"tab": "totals"})

	route := store.Current()
	assert.Equal(t, "totals", route.Params["tab"])
	assert.NotContains(t, route.Params, "from")
}

func TestStore_CurrentReturnsACopy(t *testing.T) {
	store := NewStore()
	store.Navigate("/student", Params{"tab": "upcoming"})

	route := store.Current()
	route.Params["tab"] = "mutated"

	assert.Equal(t, "upcoming", store.Current().Params["tab"])
}
