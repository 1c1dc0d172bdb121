package mocks

//go:generate mockgen -destination=./mock_reporter.go -package=mocks github.com/evdnx/gosignal/suite Reporter
