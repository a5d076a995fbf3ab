// Package runtime executes installer commands and filesystem operations
// against the root filesystem being built.
//
// Two backends are provided. [Host] works on a directory of the local
// filesystem and runs commands as child processes with a cleared
// environment, stdin closed, and stderr passed through. [Container] works
// inside an already running containerd build container, attaching each
// command to the container's task as an additional exec process and moving
// files in as tar streams.
//
// Both backends report a command that ran but failed as a [CommandError]
// wrapped in [ErrCommandFailed]. Container backend transport failures are
// wrapped in [ErrRuntime].
//
// The runtime does not create, start, or destroy containers. Container
// lifecycle belongs to the build pipeline that owns the target.
//
// Example usage:
//
//	host := runtime.NewHost()
//	if err := host.Run(ctx, []string{"/crux/bin/apk", "--root", "/crux/root", "add", "git"}, nil); err != nil {
//	    return err
//	}
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "crucible")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	ctr, err := rt.Container(ctx, "my-service-linux-amd64-stage-1")
//	if err != nil {
//	    return err
//	}
//	if err := ctr.WriteFile(ctx, "/etc/motd", []byte("hello\n")); err != nil {
//	    return err
//	}
package runtime
