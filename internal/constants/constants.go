package constants

// Folder Names
const (
	BlueprintsDirName = "blueprints"
)

// File Names
const (
	MetaFileName      = "meta.json"
	ComposeFileName   = "docker-compose.yml"
	TemplateFileName  = "template.toml"
	AppConfigFileName = "blueprintdock.toml"
	LogFileName       = "bpd.log"
)

// BackupInfix sits between the input file name and the millisecond epoch
// timestamp in backup file names (e.g. meta.json.backup.1714301345123).
const BackupInfix = ".backup."
