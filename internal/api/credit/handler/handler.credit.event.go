package credithdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	creditmodels "adcraft/internal/api/credit/models"
	creditsvc "adcraft/internal/api/credit/service"
)

// CreditEventHandler xử lý các request đọc sổ cái credit.
// Ledger chỉ đọc qua API — ghi đi qua CreditService trong pipeline.
type CreditEventHandler struct {
	*basehdl.BaseHandler[creditmodels.CreditEvent, creditmodels.CreditEvent, creditmodels.CreditEvent]
	CreditService *creditsvc.CreditService
}

// NewCreditEventHandler tạo mới CreditEventHandler
func NewCreditEventHandler() (*CreditEventHandler, error) {
	creditService, err := creditsvc.NewCreditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %v", err)
	}
	hdl := &CreditEventHandler{CreditService: creditService}
	hdl.BaseHandler = basehdl.NewBaseHandler[creditmodels.CreditEvent, creditmodels.CreditEvent, creditmodels.CreditEvent](creditService.BaseServiceMongoImpl)
	return hdl, nil
}
