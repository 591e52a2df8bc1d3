package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// BloodBankToResponse converts a BloodBank entity to its DTO. The location
// name is included when the User relationship is loaded.
func BloodBankToResponse(bank *entity.BloodBank) *dto.BloodBankResponse {
	if bank == nil {
		return nil
	}

	return &dto.BloodBankResponse{
		UserID:           bank.UserID,
		Name:             bank.Name,
		ContactNumber:    bank.ContactNumber,
		Address:          bank.Address,
		LicenseNumber:    bank.LicenseNumber,
		OperatingHours:   bank.OperatingHours,
		EmergencyContact: bank.EmergencyContact,
		Description:      bank.Description,
		ImageURL:         bank.ImageURL,
		LocationName:     bank.User.LocationName,
		CreatedAt:        bank.CreatedAt,
		UpdatedAt:        bank.UpdatedAt,
	}
}

// InventoryToResponse converts a BloodInventory entity to its DTO.
func InventoryToResponse(item *entity.BloodInventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		BloodGroup: string(item.BloodGroup),
		Units:      item.Units,
		LowStock:   item.IsLowStock(entity.LowStockThreshold),
		UpdatedAt:  item.UpdatedAt,
	}
}

// InventoriesToResponses converts a slice of inventory rows.
func InventoriesToResponses(items []entity.BloodInventory) []dto.InventoryResponse {
	responses := make([]dto.InventoryResponse, len(items))
	for i, item := range items {
		responses[i] = InventoryToResponse(&item)
	}
	return responses
}
