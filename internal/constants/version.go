package constants

// Version и PreCommitHash задаются при сборке:
//
//	go build -ldflags "-X github.com/Kargones/apk-issues/internal/constants.Version=1.2.0 \
//	  -X github.com/Kargones/apk-issues/internal/constants.PreCommitHash=$(git rev-parse --short HEAD)"
var (
	Version       = "dev"
	PreCommitHash = "unknown"
)
