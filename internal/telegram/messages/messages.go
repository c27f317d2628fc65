package messages

// Common
const (
	Error        = "🚨 Something went wrong. Please try again."
	Cancelled    = "❌ Operation cancelled."
	Unauthorized = "🚫 Unauthorized."
	AdminOnly    = "🚫 Administrator only command"
)

// Buttons
const (
	ButtonConfirm       = "✅ Confirm"
	ButtonEdit          = "✏️ Edit"
	ButtonPaymentDone   = "✅ Payment Done"
	ButtonApprove       = "✅ Approve Payment"
	ButtonBackToOrders  = "🔙 Back to Orders"
	ButtonBack          = "🔙 Back"
	ButtonPendingOrders = "See Pending Orders"
)

// Customer flow
const (
	Welcome = `🚀 *Welcome to MoonLaunch Website Builder!*

We craft high-converting crypto websites that take your memecoin to the moon!
Our proven designs have helped launch countless successful tokens.

*Ready to give your coin the website it deserves?*

🎯 *Select Your Launch Package:*`

	DetailsTemplate = "📝 *Please fill in the details below.* If any information is not available, just leave it empty.\n\n" +
		"Coin Name: \n" +
		"Coin Tokenomics (e.g., supply, max supply, etc.): \n\n" +
		"Pump.fun link: \n" +
		"Social Links:\n" +
		"Twitter: \n" +
		"Discord: \n" +
		"Telegram: \n" +
		"Other Relevant Links: \n\n" +
		"Once you're done, send the filled details in one message."

	DetailsEmpty        = "❌ Please provide valid details"
	DetailsEditPrompt   = "✏️ Please send your updated details:"
	PaymentDonePrompt   = "Click below after payment:"
	MissingData         = "❌ Missing order data. Start over with /start"
	InvalidPackage      = "❌ Invalid package. Use /start to begin again."
	PaymentSetupFailed  = "🚨 Payment setup failed. Please try again."
	OrderConfirmFailed  = "❌ Payment confirmation failed. Contact support."
	UseButtonsForChoice = "Please use the buttons to choose."
)

// Admin flow
const (
	NoPendingOrders     = "🎉 No pending orders!"
	PendingOrdersHeader = "📋 *Pending Orders*\n\nClick an order to view details:"
	OrderNotFound       = "❌ Order not found"
	OrderNotFoundRetry  = "❌ Order not found. Try again:"
	EnterOrderID        = "📝 Enter the Order ID to complete:"
	InvalidOrderID      = "❌ Invalid Order ID. Only numbers allowed."
	EnterWebsiteLink    = "🌐 Now send the website URL:"
	OrderNotApproved    = "❌ Order is not approved yet. Approve it first."
)
