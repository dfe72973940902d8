package mainboilerplate

// Version and BuildDate are populated at build time, eg:
//
//	go build -ldflags "-X github.com/antalos/mtgatracker/mainboilerplate.Version=v1.2.3"
var (
	Version   = "development"
	BuildDate = "unknown"
)
