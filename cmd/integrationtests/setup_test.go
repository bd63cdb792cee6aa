package integrationtests

import (
	bidding "auction-registry/internal/biddingService"
	"auction-registry/internal/repository"
	"auction-registry/internal/server"
	"auction-registry/services/bidding/helpers"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with a fresh in-memory registry for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := bidding.NewAuctionService(repo)
	router := server.SetupRouter(service)
	return router
}

// ExecuteRequestAndParse executes an HTTP request as clientID and parses the JSON envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, clientID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(helpers.ClientIDHeader, clientID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// AddItem lists an item as owner and fails the test on a non-201 response
func AddItem(t *testing.T, router *gin.Engine, owner, name string, reserve float64) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, "POST", "/items", owner, helpers.AddItemRequest{Name: name, ReservedPrice: &reserve})
	if w.Code != 201 {
		t.Fatalf("failed to add item %s: status %d body %s", name, w.Code, w.Body.String())
	}
}

// Bid places a bid and returns the response status
func Bid(t *testing.T, router *gin.Engine, bidder, name string, amount float64) int {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, "POST", "/items/"+name+"/bids", bidder, helpers.PlaceBidRequest{Amount: &amount})
	return w.Code
}
