// Package scenario maps the single CLI keyword onto an ordered list of
// operations and runs them one after another.
//
//	build          Build
//	clean          Clean
//	rm             Remove
//	press          Press(release)
//	release        Build, Press(release), Clean
//	all            Generate: Build, Press(release), Clean per project
//	tmp, archive   Build, Press(archive), Clean
//	open           Open
//	dev            Build, Open
//	fmt            Format
//	lint           Lint
//
// Steps never branch on each other's results. The first step that returns an
// error ends the scenario and the error is handed back unchanged so the CLI
// boundary can pick the exit code.
package scenario
