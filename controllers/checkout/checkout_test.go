package checkoutcontroller

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func checkoutRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/checkout", func(c *gin.Context) {
		c.Set("user_id", "alice")
	}, PlaceOrder(db))
	return r
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func productRows(stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "brand", "price", "rating", "image",
		"category", "product_type", "description", "stock", "source",
	}).AddRow(1, "Matte Lipstick", "nyx", 12.5, 4.0, "lipstick.jpg",
		"lipstick", "lipstick", "", stock, "db")
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db, mock := mockDB(t)

	w := postCheckout(checkoutRouter(db), `{"items":[],"payment_method":"card"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// binding fails before any query runs
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsMissingItems(t *testing.T) {
	db, mock := mockDB(t)

	w := postCheckout(checkoutRouter(db), `{"payment_method":"card"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsZeroQuantityLine(t *testing.T) {
	db, mock := mockDB(t)

	w := postCheckout(checkoutRouter(db),
		`{"items":[{"product_id":1,"quantity":0}],"payment_method":"card"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsUnsupportedPaymentMethod(t *testing.T) {
	db, mock := mockDB(t)

	w := postCheckout(checkoutRouter(db),
		`{"items":[{"product_id":1,"quantity":1}],"payment_method":"bitcoin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported payment method")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRows(1))
	mock.ExpectRollback()

	w := postCheckout(checkoutRouter(db),
		`{"items":[{"product_id":1,"quantity":5}],"payment_method":"card"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsUnknownProduct(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectBegin()
	// no matching row; gorm reports record-not-found
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}))
	mock.ExpectRollback()

	w := postCheckout(checkoutRouter(db),
		`{"items":[{"product_id":99,"quantity":1}],"payment_method":"card"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlePayment(t *testing.T) {
	status, err := settlePayment("Card")
	require.NoError(t, err)
	assert.Equal(t, "paid", string(status))

	status, err = settlePayment("cod")
	require.NoError(t, err)
	assert.Equal(t, "pending", string(status))

	_, err = settlePayment("wire")
	assert.Error(t, err)
}
