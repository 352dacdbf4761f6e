package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/core/services"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	service        portssvc.WalletSvcFacade
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.service = services.NewWalletService(suite.mockWalletRepo)
}

func (suite *WalletServiceTestSuite) TestTopUp_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(5000)
	balanceAfter := decimal.NewFromInt(75000)

	suite.mockWalletRepo.On("TopUp", ctx, userID, amount, "Wallet top-up").Return(&domain.WalletTransaction{
		TxnID:        uuid.NewString(),
		UserID:       userID,
		Type:         domain.TxnTopup,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	}, nil).Once()

	balance, err := suite.service.TopUp(ctx, userID, amount)

	suite.Require().NoError(err)
	suite.True(balance.Equal(balanceAfter))
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestTopUp_ZeroAmount() {
	ctx := context.Background()

	_, err := suite.service.TopUp(ctx, uuid.NewString(), decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "TopUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestTopUp_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.TopUp(ctx, uuid.NewString(), decimal.NewFromInt(-100))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "TopUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestListMyTransactions() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.WalletTransaction{
		{TxnID: uuid.NewString(), UserID: userID, Type: domain.TxnTopup, Amount: decimal.NewFromInt(5000)},
		{TxnID: uuid.NewString(), UserID: userID, Type: domain.TxnPurchase, Amount: decimal.NewFromInt(-1280)},
	}

	suite.mockWalletRepo.On("ListTransactionsByUser", ctx, userID).Return(txns, nil).Once()

	got, err := suite.service.ListMyTransactions(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
