// Package logging provides structured logging for pland on top of Zap.
//
// Logs go to stderr: stdout belongs to plan output, which callers may pipe
// or diff, so diagnostic output must never interleave with it.
//
// Create a logger from config:
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("plan found", zap.Int("steps", len(plan)))
//
// Use TestLogger in tests to assert on emitted entries:
//
//	tl := logging.NewTestLogger()
//	tl.Info("solved", zap.String("problem", "school"))
//	tl.AssertLogged(t, zapcore.InfoLevel, "solved")
package logging
