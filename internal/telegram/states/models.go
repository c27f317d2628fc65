package states

type State string

const (
	StateNone State = "none"
)

// cob -> customer order
// acp -> admin complete order

// customer order states
const (
	CustomerOrderWaitPackage State = "cob_wt_package"
	CustomerOrderWaitDetails State = "cob_wt_details"
	CustomerOrderWaitConfirm State = "cob_wt_confirm"
	CustomerOrderWaitPayment State = "cob_wt_payment"
)

// admin complete order states
const (
	AdminCompleteWaitOrderID State = "acp_wt_order_id"
	AdminCompleteWaitLink    State = "acp_wt_link"
)
