package common

// Names of the persisted JSON documents, one per collection.
const (
	AccountsFile = "accounts.json"
	UsersFile    = "users.json"
	SupportFile  = "support_requests.json"
)

const (
	// AdminUsername is the bootstrap administrator seeded on first run.
	AdminUsername = "RentMyWaifu"

	// GuestName marks support requests submitted without a session.
	GuestName = "Guest"
)
