package compose

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/compose-spec/compose-go/v2/types"
)

// LoadProject loads a compose file through the compose-go loader,
// verifying it is a well-formed, resolvable project.
func LoadProject(ctx context.Context, path string) (*types.Project, error) {
	options, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithOsEnv,
		cli.WithName("undock-compose"),
	)
	if err != nil {
		return nil, fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return project, nil
}

// Check verifies that the file at path loads as a compose project.
func Check(ctx context.Context, path string) error {
	_, err := LoadProject(ctx, path)
	return err
}
