package service

import (
	"fmt"

	"lunchtime/lunch-svc/internal/domain"
)

const (
	AdvisorySuccess = "success"
	AdvisoryWarning = "warning"
	AdvisoryError   = "error"
	AdvisoryInfo    = "info"
)

func advise(kind, title, message string) domain.Advisory {
	return domain.Advisory{Type: kind, Title: title, Message: message}
}

func comboCompleteAdvisory(discount int) domain.Advisory {
	return advise(AdvisorySuccess, "Combo lunch assembled!", fmt.Sprintf("You got a %d discount.", discount))
}

func kindConflictAdvisory() domain.Advisory {
	return advise(AdvisoryWarning, "Combo lunch conflict", "Choose dishes of the same kind.")
}

func resetAdvisory() domain.Advisory {
	return advise(AdvisoryInfo, "Order cleared", "Your current dish selection has been reset.")
}

func autoComboAdvisory(outcome domain.AutoComboOutcome, discount int) domain.Advisory {
	switch outcome {
	case domain.OutcomeFullCombo:
		return advise(AdvisorySuccess, "Combo lunch assembled!",
			fmt.Sprintf("A full combo lunch with a %d discount was picked for you.", discount))
	case domain.OutcomePartial:
		return advise(AdvisoryInfo, "Selection made", "The available dishes were picked for you.")
	default:
		return advise(AdvisoryError, "Combo failed", "Could not assemble a combo.")
	}
}

func itemRemovedAdvisory() domain.Advisory {
	return advise(AdvisoryInfo, "Dish removed", "The dish was removed from your order.")
}

func EmptyOrderAdvisory() domain.Advisory {
	return advise(AdvisoryWarning, "Order is empty", "Please go back to the menu and choose some dishes.")
}

func orderPlacedAdvisory(order *domain.Order) domain.Advisory {
	return advise(AdvisorySuccess, "Order placed!",
		fmt.Sprintf("Your order #%s has been sent. Total: %d.", order.ID, order.Total))
}

// FailureAdvisory describes a failed operation for the notification popup.
func FailureAdvisory(title string, err error) domain.Advisory {
	return advise(AdvisoryError, title, err.Error())
}

func OrderDeletedAdvisory(id string) domain.Advisory {
	return advise(AdvisorySuccess, "Order deleted", fmt.Sprintf("Order #%s has been deleted.", id))
}
