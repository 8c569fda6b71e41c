package backend

// Counsellor is a counselor profile as returned by the admin API;
// `UserName` is the unique key
type Counsellor struct {
	UserName          string             `json:"userName"`
	Role              string             `json:"role"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	PhoneNumber       string             `json:"phoneNumber"`
	Description       *string            `json:"description"`
	Email             string             `json:"email"`
	WalletAmount      float64            `json:"walletAmount"`
	Transactions      []Transaction      `json:"transactions"`
	BankDetails       *BankDetails       `json:"bankDetails"`
	PhotoUrlSmall     *string            `json:"photoUrlSmall"`
	OrganisationName  string             `json:"organisationName"`
	Experience        *string            `json:"experience"`
	ActivityLog       []ActivityLog      `json:"activityLog"`
	StateOfCounsellor []string           `json:"stateOfCounsellor"`
	Expertise         []string           `json:"expertise"`
	Clients           []CounsellorClient `json:"clients"`
	FollowerIds       []string           `json:"followerIds"`
	Rating            *float64           `json:"rating"`
	LanguagesKnow     []string           `json:"languagesKnow"`
	WorkingDays       []string           `json:"workingDays"`
	OfficeStartTime   string             `json:"officeStartTime"`
	OfficeEndTime     string             `json:"officeEndTime"`
	FullOfficeAddress FullOfficeAddress  `json:"fullOfficeAddress"`
	RatePerYear       *float64           `json:"ratePerYear"`
	RatePerMinute     *float64           `json:"ratePerMinute"`
	PlusAmount        *float64           `json:"plusAmount"`
	ProAmount         *float64           `json:"proAmount"`
	EliteAmount       *float64           `json:"eliteAmount"`
	PhoneOtpVerified  bool               `json:"phoneOtpVerified"`
	EmailOtpVerified  bool               `json:"emailOtpVerified"`
	AppointmentIds    []string           `json:"appointmentIds"`
	Verified          bool               `json:"verified"`
}

func (c Counsellor) FullName() string {
	return c.FirstName + " " + c.LastName
}

type FullOfficeAddress struct {
	OfficeNameFloorBuildingAndArea string `json:"officeNameFloorBuildingAndArea"`
	City                           string `json:"city"`
	State                          string `json:"state"`
	PinCode                        string `json:"pinCode"`
	LatCoordinate                  string `json:"latCoordinate"`
	LongCoordinate                 string `json:"longCoordinate"`
}

type ActivityLog struct {
	Activity           string            `json:"activity"`
	Timestamp          ActivityTimestamp `json:"timestamp"`
	Id                 string            `json:"id"`
	Photo              *string           `json:"photo"`
	ActivityType       *string           `json:"activityType"`
	ActivitySenderId   *string           `json:"activitySenderId"`
	ActivitySenderRole *string           `json:"activitySenderRole"`
}

type ActivityTimestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int64 `json:"nanos"`
}

type Transaction struct {
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Timestamp    int64   `json:"timestamp"`
	Description  string  `json:"description"`
	PaymentId    string  `json:"paymentId"`
	CounsellorId string  `json:"counsellorId"`
	UserId       string  `json:"userId"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
}

type CounsellorClient struct {
	UserId string `json:"userId"`
	Plan   string `json:"plan"`
}

// Withdrawal request statuses as stored by the backend; anything else
// is surfaced as "Unknown" by the display layer
const (
	WithdrawalStatusProcessing  = "processing"
	WithdrawalStatusCompleted   = "completed"
	WithdrawalStatusTransferred = "transferred"
)

// Withdrawal is a counselor withdrawal request; `PaymentId` is the
// unique key
type Withdrawal struct {
	PaymentId                    string      `json:"paymentId"`
	CounsellorId                 string      `json:"counsellorId"`
	CounsellorFullName           string      `json:"counsellorFullName"`
	CounsellorPhoneNumber        string      `json:"counsellorPhoneNumber"`
	CounsellorEmail              string      `json:"counsellorEmail"`
	WithdrawalRequestAmount      float64     `json:"withdrawalRequestAmount"`
	TimestampOfWithdrawalRequest int64       `json:"timestampOfWithdrawalRequest"`
	RequestStatus                string      `json:"requestStatus"`
	RequestApproved              bool        `json:"requestApproved"`
	CounsellorBankDetails        BankDetails `json:"counsellorBankDetails"`
}

// IsActionable indicates whether the mark-as-transferred action is
// still offered for this request
func (w Withdrawal) IsActionable() bool {
	return w.RequestStatus == WithdrawalStatusProcessing && !w.RequestApproved
}

type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IfscCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
}

// Rates are the counsellor pricing fields the admin API accepts
// partial updates for; nil fields are omitted from the PATCH body
type Rates struct {
	RatePerYear   *float64 `json:"ratePerYear,omitempty"`
	RatePerMinute *float64 `json:"ratePerMinute,omitempty"`
	PlusAmount    *float64 `json:"plusAmount,omitempty"`
	ProAmount     *float64 `json:"proAmount,omitempty"`
	EliteAmount   *float64 `json:"eliteAmount,omitempty"`
}

func (r Rates) IsZero() bool {
	return r.RatePerYear == nil &&
		r.RatePerMinute == nil &&
		r.PlusAmount == nil &&
		r.ProAmount == nil &&
		r.EliteAmount == nil
}

// Notification is a broadcast payload; all four fields are required
// before submission
type Notification struct {
	Id    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
