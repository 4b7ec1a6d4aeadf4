package models

import (
	"strings"

	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/services/kyc"
)

func ToKYCProgressResponse(session *kyc.Session) *KYCProgressResponse {
	response := &KYCProgressResponse{
		KYCID:      session.KYCID,
		Status:     string(session.Status),
		Stage:      string(session.Stage),
		Completed:  session.Stage == kyc.StageDone,
		CustomerID: session.CustomerID,
	}

	if session.Bank != nil {
		response.Bank = &BankDataResponse{
			BankCode:      session.Bank.BankCode,
			BankName:      session.Bank.BankName,
			AccountNumber: session.Bank.AccountNumber,
			AccountName:   session.Bank.AccountName,
			Verified:      session.Bank.Verified,
			MatchStatus:   session.Bank.MatchStatus,
		}
	}

	if session.BVN != nil {
		response.BVN = &BVNDataResponse{
			BVN:         maskBVN(session.BVN.BVN),
			FirstName:   session.BVN.FirstName,
			LastName:    session.BVN.LastName,
			MiddleName:  session.BVN.MiddleName,
			Verified:    session.BVN.Verified,
			MatchStatus: session.BVN.MatchStatus,
		}
	}

	return response
}

func ToNotificationResponses(notifications []db.Notification) []NotificationResponse {
	responses := []NotificationResponse{}
	for _, n := range notifications {
		responses = append(responses, NotificationResponse{
			ID:      n.ID,
			Outcome: n.Outcome,
			Message: n.Message,
		})
	}
	return responses
}

// maskBVN hides all but the last four digits
func maskBVN(bvn string) string {
	if len(bvn) <= 4 {
		return bvn
	}
	return strings.Repeat("*", len(bvn)-4) + bvn[len(bvn)-4:]
}
