package stagekit

import "fmt"

// IssueCode classifies a validation finding. Codes are string-based for
// debuggability and natural JSON serialization.
type IssueCode string

const (
	// Layer identity.

	// CodeLayerIDMissing indicates a layer without a non-empty layerId.
	CodeLayerIDMissing IssueCode = "layer.id.missing"

	// CodeLayerIDDuplicate indicates a layerId already used by an earlier layer.
	CodeLayerIDDuplicate IssueCode = "layer.id.duplicate"

	// Asset reference.

	// CodeLayerAssetInvalid indicates both or neither of imagePath/registryKey.
	CodeLayerAssetInvalid IssueCode = "layer.asset.invalid"

	// Numeric ranges (warnings; values are kept as authored).

	// CodeLayerOpacityRange indicates opacity outside [0, 1].
	CodeLayerOpacityRange IssueCode = "layer.opacity.range"

	// CodeLayerAnchorRange indicates an anchor component outside [0, 1].
	CodeLayerAnchorRange IssueCode = "layer.anchor.range"

	// CodeBehaviorRateNegative indicates a negative rpm, radius, or amplitude.
	CodeBehaviorRateNegative IssueCode = "behavior.rate.negative"

	// CodeBehaviorDirectionUnknown indicates a direction outside cw/ccw.
	CodeBehaviorDirectionUnknown IssueCode = "behavior.direction.unknown"

	// Container.

	// CodeLayerContainerInvalid indicates fit/alignment without usable
	// dimensions, or non-positive dimensions.
	CodeLayerContainerInvalid IssueCode = "layer.container.invalid"

	// Event hooks.

	// CodeEventHookInvalid indicates a hook value that is not an array.
	CodeEventHookInvalid IssueCode = "event.hook.invalid"

	// CodeEventActionUnknown indicates an action outside spin/orbit/pulse/fade.
	CodeEventActionUnknown IssueCode = "event.action.unknown"

	// CodeEventSetType indicates a set field with the wrong type.
	CodeEventSetType IssueCode = "event.set.type"

	// Stage.

	// CodeStageOriginUnknown indicates an unrecognized origin string.
	CodeStageOriginUnknown IssueCode = "stage.origin.unknown"
)

// Severity distinguishes blocking errors from advisory warnings.
type Severity uint8

const (
	SeverityError   Severity = iota // blocks validation atomically
	SeverityWarning                 // collected, never blocks, never mutates
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return unknownStr
	}
}

// Issue is one validation finding, located by a config path such as
// "layers[2].opacity".
type Issue struct {
	Code     IssueCode
	Path     string
	Message  string
	Severity Severity
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// issueCollector accumulates errors and warnings during one Validate call.
type issueCollector struct {
	errors   []Issue
	warnings []Issue
}

func (c *issueCollector) errorf(code IssueCode, path, format string, args ...any) {
	c.errors = append(c.errors, Issue{
		Code:     code,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	})
}

func (c *issueCollector) warnf(code IssueCode, path, format string, args ...any) {
	c.warnings = append(c.warnings, Issue{
		Code:     code,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}
