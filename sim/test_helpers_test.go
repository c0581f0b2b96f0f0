package sim

import "testing"

// nominalConfig is the compiled-in defaults.
func nominalConfig() Config {
	return DefaultConfig()
}

// overflowConfig has a 5 cm radius tank that fills in four ticks.
func overflowConfig() Config {
	cfg := DefaultConfig()
	cfg.Tank.Radius = 0.05
	return cfg
}

// undersizedConfig has a pump with 1 cm of head.
func undersizedConfig() Config {
	cfg := DefaultConfig()
	cfg.Pump.Head = 0.01
	return cfg
}

// runScenario runs cfg to completion with a no-op sleeper and returns the simulator and captured lines.
func runScenario(t testing.TB, cfg Config) (*Simulator, *LineRecorder) {
	t.Helper()
	rec := &LineRecorder{}
	s, err := NewSimulator(cfg, rec, NoopSleeper{})
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s, rec
}

// observationLines filters the header, separator, notices and closing line out of lines.
func observationLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		switch l {
		case HeaderLine, SeparatorLine, CompletionLine, string(NoticeNoFlow), string(NoticeOverflow):
			continue
		}
		out = append(out, l)
	}
	return out
}
