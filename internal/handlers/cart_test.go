package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/services"
)

func (suite *APITestSuite) TestCart_RequiresAuth() {
	w := suite.do(http.MethodGet, "/v1/cart", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Authentication required", suite.decode(w).Message)
}

func (suite *APITestSuite) TestAddToCart() {
	productID := uuid.New()
	suite.cart.On("AddToCart", mock.Anything, suite.userID, &services.AddToCartRequest{ProductID: productID, Quantity: 2}).
		Return(&models.CartEntry{UserID: suite.userID, ProductID: productID, Quantity: 2}, nil).Once()

	w := suite.do(http.MethodPost, "/v1/cart", gin.H{"product_id": productID, "quantity": 2}, suite.userToken)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "Product added to cart", suite.decode(w).Message)
}

func (suite *APITestSuite) TestAddToCart_Duplicate() {
	productID := uuid.New()
	suite.cart.On("AddToCart", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("product %s already in cart: %w", productID, services.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/v1/cart", gin.H{"product_id": productID, "quantity": 1}, suite.userToken)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	resp := suite.decode(w)
	assert.False(suite.T(), resp.Status)
	assert.Equal(suite.T(), "Product is already in the cart", resp.Message)
}

func (suite *APITestSuite) TestAddToCart_InvalidQuantity() {
	w := suite.do(http.MethodPost, "/v1/cart", gin.H{"product_id": uuid.New(), "quantity": 0}, suite.userToken)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.cart.AssertNotCalled(suite.T(), "AddToCart", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APITestSuite) TestAddToCart_UnknownProduct() {
	suite.cart.On("AddToCart", mock.Anything, suite.userID, mock.Anything).Return(nil, services.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/v1/cart", gin.H{"product_id": uuid.New(), "quantity": 1}, suite.userToken)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Product not found", suite.decode(w).Message)
}

func (suite *APITestSuite) TestGetCart() {
	suite.cart.On("GetCart", mock.Anything, suite.userID).Return([]models.CartItemView{
		{Title: "Red Shoe", Brand: "Acme", CartEntry: models.CartEntry{Quantity: 3}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/v1/cart", nil, suite.userToken)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := string(suite.decode(w).Data)
	assert.Contains(suite.T(), data, `"title":"Red Shoe"`)
	assert.Contains(suite.T(), data, `"brand":"Acme"`)
	assert.Contains(suite.T(), data, `"quantity":3`)
}

func (suite *APITestSuite) TestRemoveFromCart() {
	entryID := uuid.New()
	suite.cart.On("RemoveFromCart", mock.Anything, suite.userID, entryID).
		Return(&models.CartEntry{Quantity: 1}, nil).Once()

	w := suite.do(http.MethodDelete, "/v1/cart/"+entryID.String(), nil, suite.userToken)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Product removed from cart", suite.decode(w).Message)
}

func (suite *APITestSuite) TestRemoveFromCart_NotFound() {
	suite.cart.On("RemoveFromCart", mock.Anything, suite.userID, mock.Anything).Return(nil, services.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/v1/cart/"+uuid.NewString(), nil, suite.userToken)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Cart item not found", suite.decode(w).Message)
}
