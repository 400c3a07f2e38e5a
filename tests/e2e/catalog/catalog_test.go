//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"

	"beach-reserve/internal/usecase/queries"
	"beach-reserve/tests/common/dbtest"
	"beach-reserve/tests/common/httptest"
	"beach-reserve/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestBrowseTree() {
	s.Run("walks region to beach to stand to items", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/regions", nil, "")
		var regions []queries.RegionView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &regions)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		require.Len(s.T(), regions, 1)
		require.Equal(s.T(), "Litoral Norte", regions[0].Name)
		require.Equal(s.T(), "litoral-norte", regions[0].Slug)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/regions/%s/beaches", regions[0].ID), nil, "")
		var beaches []queries.BeachView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &beaches)
		require.Len(s.T(), beaches, 1)
		require.Equal(s.T(), "Praia Grande", beaches[0].Name)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/beaches/%s/vendors", beaches[0].ID), nil, "")
		var vendors []queries.VendorView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vendors)
		require.Len(s.T(), vendors, 1)
		require.Equal(s.T(), "Barraca do Zé", vendors[0].Name)
		require.Equal(s.T(), "Praia Grande", vendors[0].BeachName)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/vendors/%s/items", vendors[0].ID), nil, "")
		var items []queries.ItemView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		require.Len(s.T(), items, 2)
		names := []string{items[0].Name, items[1].Name}
		require.Contains(s.T(), names, "Cadeira de praia")
		require.Contains(s.T(), names, "Guarda-sol")
	})

	s.Run("rejects a malformed region id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/regions/not-a-uuid/beaches", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid region ID format")
	})
}

func (s *CatalogSuite) TestGetVendor() {
	s.Run("returns the stand detail", func() {
		vendorID := dbtest.DefaultVendorID(s.T(), s.DB)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/vendors/%s", vendorID), nil, "")
		var vendor queries.VendorView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vendor)
		require.Equal(s.T(), vendorID, vendor.ID)
		require.Equal(s.T(), "Cadeiras e guarda-sóis", vendor.Description)
		require.True(s.T(), vendor.IsActive)
	})

	s.Run("returns 404 for an unknown stand", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/vendors/%s", uuid.New()), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Vendor not found")
	})
}

func (s *CatalogSuite) TestListItems() {
	s.Run("hides deactivated items from the public listing", func() {
		vendorID := dbtest.DefaultVendorID(s.T(), s.DB)
		itemID := dbtest.DefaultItemID(s.T(), s.DB)

		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE vendor_items SET is_active = false WHERE id = $1", itemID)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/vendors/%s/items", vendorID), nil, "")
		var items []queries.ItemView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		require.Len(s.T(), items, 1)
		require.Equal(s.T(), "Guarda-sol", items[0].Name)
	})
}
