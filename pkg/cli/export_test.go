package cli

var (
	DetectRepositoryForTest = detectRepository
	ParseRemoteURLForTest   = parseRemoteURL
)
