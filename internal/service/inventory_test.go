package service

import (
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InventoryService
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceSuite))
}

func (s *InventoryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInventoryService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *InventoryServiceSuite) createItem(name, category string, quantity int, unitCost, location string) *dto.InventoryItemResponse {
	resp, err := s.service.CreateItem(s.GetContext(), dto.CreateInventoryItemRequest{
		ItemName:        name,
		Category:        category,
		Quantity:        quantity,
		Unit:            "each",
		UnitCost:        decimal.RequireFromString(unitCost),
		CurrentLocation: location,
	})
	s.Require().NoError(err)
	return resp
}

func (s *InventoryServiceSuite) TestCreateValuesStockAndLogsAddition() {
	item := s.createItem("Copper pipe", "plumbing", 12, "7.25", "Warehouse A")
	s.Equal("87.00", item.TotalValue.StringFixed(2))
	s.Equal(types.InventoryStatusAvailable, item.Status)

	history, err := s.service.GetTransactionHistory(s.GetContext(), item.ID)
	s.NoError(err)
	s.Require().Len(history, 1)
	s.Equal(types.InventoryTransactionAdd, history[0].TransactionType)
	s.Equal(12, history[0].QuantityChanged)
	s.Equal("Warehouse A", history[0].ToLocation)
	s.Equal("Initial inventory addition", history[0].Notes)
}

func (s *InventoryServiceSuite) TestTransferMovesItem() {
	item := s.createItem("Ladder", "equipment", 3, "120", "")

	resp, err := s.service.TransferItem(s.GetContext(), dto.TransferInventoryRequest{
		InventoryID: item.ID,
		Quantity:    2,
		ToLocation:  "Site 14",
	})
	s.NoError(err)
	s.True(resp.Success)
	s.Equal("Inventory transferred successfully", resp.Message)
	s.Equal(inventory.UnknownLocation, resp.Transaction.FromLocation)
	s.Equal("Site 14", resp.Transaction.ToLocation)
	s.Equal(2, resp.Transaction.QuantityChanged)

	moved, err := s.service.GetItem(s.GetContext(), item.ID)
	s.NoError(err)
	s.Equal("Site 14", moved.CurrentLocation)
	s.Equal(3, moved.Quantity)
	s.True(s.GetNow().Equal(lo.FromPtr(moved.LastLocationUpdate)))

	history, err := s.service.GetTransactionHistory(s.GetContext(), item.ID)
	s.NoError(err)
	s.Len(history, 2)
	s.Equal(1, lo.CountBy(history, func(t *dto.InventoryTransactionResponse) bool {
		return t.TransactionType == types.InventoryTransactionTransfer
	}))
}

func (s *InventoryServiceSuite) TestTransferMoreThanStockFails() {
	item := s.createItem("Ladder", "equipment", 3, "120", "Yard")

	_, err := s.service.TransferItem(s.GetContext(), dto.TransferInventoryRequest{
		InventoryID: item.ID,
		Quantity:    4,
		ToLocation:  "Site 14",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Equal("Insufficient quantity", ierr.HintOf(err))

	unchanged, err := s.service.GetItem(s.GetContext(), item.ID)
	s.NoError(err)
	s.Equal("Yard", unchanged.CurrentLocation)
}

func (s *InventoryServiceSuite) TestTransferUnknownItemFails() {
	_, err := s.service.TransferItem(s.GetContext(), dto.TransferInventoryRequest{
		InventoryID: "item_missing",
		Quantity:    1,
		ToLocation:  "Site 14",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Inventory item not found", ierr.HintOf(err))
}

func (s *InventoryServiceSuite) TestTransferRejectsNonPositiveQuantity() {
	item := s.createItem("Ladder", "equipment", 3, "120", "Yard")

	_, err := s.service.TransferItem(s.GetContext(), dto.TransferInventoryRequest{
		InventoryID: item.ID,
		Quantity:    0,
		ToLocation:  "Site 14",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InventoryServiceSuite) TestSummaryIncludesEveryStatus() {
	s.createItem("Ladder", "equipment", 2, "100", "Yard")
	drill := s.createItem("Drill", "equipment", 1, "250.50", "Yard")
	s.createItem("Grout", "tile", 10, "4.10", "Yard")

	_, err := s.service.UpdateItemStatus(s.GetContext(), drill.ID, dto.UpdateInventoryStatusRequest{
		Status: types.InventoryStatusMaintenance,
	})
	s.NoError(err)

	summary, err := s.service.GetSummary(s.GetContext())
	s.NoError(err)
	s.Equal(3, summary.TotalItems)
	s.Equal("491.50", summary.TotalValue)
	s.Len(summary.ByStatus, len(types.InventoryStatuses))
	s.Equal(2, summary.ByStatus[types.InventoryStatusAvailable])
	s.Equal(1, summary.ByStatus[types.InventoryStatusMaintenance])
	s.Equal(0, summary.ByStatus[types.InventoryStatusInUse])
	s.Equal(map[string]int{"equipment": 2, "tile": 1}, summary.ByCategory)
}

func (s *InventoryServiceSuite) TestSummaryRefreshesAfterWrites() {
	s.createItem("Ladder", "equipment", 2, "100", "Yard")

	first, err := s.service.GetSummary(s.GetContext())
	s.NoError(err)
	s.Equal(1, first.TotalItems)

	second := s.createItem("Drill", "equipment", 1, "50", "Yard")
	summary, err := s.service.GetSummary(s.GetContext())
	s.NoError(err)
	s.Equal(2, summary.TotalItems)

	s.NoError(s.service.DeleteItem(s.GetContext(), second.ID))
	summary, err = s.service.GetSummary(s.GetContext())
	s.NoError(err)
	s.Equal(1, summary.TotalItems)
	s.Equal("200.00", summary.TotalValue)
}

func (s *InventoryServiceSuite) TestSummaryIsPerUser() {
	s.createItem("Ladder", "equipment", 2, "100", "Yard")
	_, err := s.service.GetSummary(s.GetContext())
	s.NoError(err)

	other, err := s.service.GetSummary(testutil.SetupContextForUser("user_someone_else"))
	s.NoError(err)
	s.Zero(other.TotalItems)
	s.Equal("0.00", other.TotalValue)
}
