package osabootstrap

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Bootstrap a host for OpenStack-Ansible"
	MsgRunShort        = "Run the full bootstrap"
	MsgWrapperShort    = "Install the openstack-ansible wrapper script only"
	MsgGenConfigShort  = "Write a commented bootstrap.toml with the defaults"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgBootstrapDone    = "Ansible is installed, pinned and configured for use."
	MsgWrapperAvailable = "Run playbooks with the openstack-ansible wrapper in /usr/local/bin."
	MsgWrapperWritten   = "Wrapper script written to %s\n"
	MsgConfigWritten    = "Wrote %s\n"
	MsgConfigExists     = "%s already exists, not overwriting\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrBootstrap  = "bootstrap failed: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview the bootstrap steps without executing them"
)

// MsgRootLong is the root command help text.
const MsgRootLong = `osa-bootstrap prepares a host to run OpenStack-Ansible: it installs the OS
prerequisite packages for the detected distribution, installs pip and a pinned
Ansible release, fetches role dependencies from the role manifest, and writes
the openstack-ansible wrapper that forwards user_*.yml variable files to
ansible-playbook.`
