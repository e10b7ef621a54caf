package config

import "github.com/spurkit/spur/internal/supervisor"

// TailwindArgs builds the tailwindcss CLI argument list from the css section.
// Only the first input file is passed; the tailwind CLI takes a single -i.
func (c *CSSConfig) TailwindArgs() []string {
	var args []string

	if len(c.Input) > 0 {
		args = append(args, "-i", c.Input[0])
	}

	args = append(args, "-o", c.Output)

	if c.WatchAlways {
		args = append(args, "-w=always")
	} else {
		args = append(args, "-w")
	}

	if c.Minify {
		args = append(args, "-m")
	}
	if c.Sourcemap {
		args = append(args, "--map")
	}

	return args
}

// WatchPlan resolves the css section into the supervisor's watch plan.
// When the section is disabled the zero plan is returned and dev mode
// behaves exactly as if only the primary watcher existed.
func (c *Config) WatchPlan() supervisor.WatchPlan {
	if !c.CSS.Enabled {
		return supervisor.WatchPlan{}
	}

	command := append([]string{"npx", "tailwindcss"}, c.CSS.TailwindArgs()...)

	return supervisor.WatchPlan{
		Enabled: true,
		Command: command,
	}
}
