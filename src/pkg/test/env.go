package test

import "api.sahayatri.app/src/pkg/global"

// SetupMockEnv fills the globals that tests need without loading a .env file.
// The Resend key is deliberately bogus so alert mails fail fast in tests.
func SetupMockEnv() {
	global.JWT_SIGNING_KEY = "test-signing-key"
	global.RESEND_API_KEY = "re_test_000000000000000000000000"
	global.RESEND_FROM = "Sahayatri <noreply@sahayatri.app>"
}
