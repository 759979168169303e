package interaction

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Session state sources, used as metric labels.
const (
	SessionSourceRequest = "request"
	SessionSourceStore   = "store"
	SessionSourceNew     = "new"
)
