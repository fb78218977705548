package domain

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

const (
	PlanStatusRunning   = "running"
	PlanStatusCompleted = "completed"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

const (
	MethodEasyPaisa = "EasyPaisa"
	MethodJazzCash  = "JazzCash"
)

const (
	// ReferralBonusAmount is credited to the inviter on every purchase by a referred user.
	ReferralBonusAmount = 200.0
	MinWithdrawAmount   = 200.0
)

// Phone numbers are stored with the country prefix; logins use the bare 10-digit form.
const (
	PhonePrefix = "+92"
	// EmailDomain builds the synthetic email identifier <digits>@investlion.com.
	EmailDomain = "investlion.com"
)

const (
	DepositAccountNumber = "03265740158"
	DepositHolderName    = "InvestLion Official"
)
