package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/domain"
	"jewelpos/internal/handler"
	"jewelpos/internal/service"
	"jewelpos/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRateHandler_Set_Success(t *testing.T) {
	svc := new(mocks.MockRateService)
	h := handler.NewRateHandler(svc)

	svc.On("SetRate", mock.Anything, domain.MetalGold, service.SetRateInput{RatePer10Grams: dec("61500")}).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6150")}, nil)

	body, _ := json.Marshal(gin.H{"rate_per_10g": "61500"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/rates/gold", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "metal", Value: "gold"}}

	h.Set(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	svc.AssertExpectations(t)
}

func TestRateHandler_Set_Locked(t *testing.T) {
	svc := new(mocks.MockRateService)
	h := handler.NewRateHandler(svc)

	svc.On("SetRate", mock.Anything, domain.MetalGold, mock.Anything).
		Return(nil, domain.ErrRateLocked)

	body, _ := json.Marshal(gin.H{"rate_per_10g": "62000"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/rates/gold", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "metal", Value: "gold"}}

	h.Set(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LOCKED")
}

func TestRateHandler_Set_UnknownMetal(t *testing.T) {
	svc := new(mocks.MockRateService)
	h := handler.NewRateHandler(svc)

	svc.On("SetRate", mock.Anything, domain.MetalType("platinum"), mock.Anything).
		Return(nil, domain.ErrInvalidMetalType)

	body, _ := json.Marshal(gin.H{"rate_per_10g": "30000"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/rates/platinum", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "metal", Value: "platinum"}}

	h.Set(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_METAL_TYPE")
}

func TestRateHandler_History(t *testing.T) {
	svc := new(mocks.MockRateService)
	h := handler.NewRateHandler(svc)

	svc.On("History", mock.Anything, domain.MetalSilver, 7).
		Return([]domain.RateHistoryEntry{{MetalType: domain.MetalSilver, RatePerGram: dec("82")}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/rates/silver/history?limit=7", http.NoBody)
	c.Params = gin.Params{{Key: "metal", Value: "silver"}}

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "silver")
	svc.AssertExpectations(t)
}
