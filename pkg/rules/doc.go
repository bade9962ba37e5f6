// Package rules loads rule sets: a source root plus ordered, per-platform
// lists of mapping rules.
//
// # Formats
//
// Rule sets are read from TOML, YAML or XML files, picked by extension:
//
//	source = "../dotfiles"
//
//	[[platforms]]
//	name = "linux"
//
//	[[platforms.rules]]
//	origin = "docs"
//	destination = "Docs"
//
// The XML form uses the SetupConfig layout:
//
//	<SetupConfig>
//	  <OriginFolderPath>../dotfiles</OriginFolderPath>
//	  <Platforms>
//	    <Platform>
//	      <Name>linux</Name>
//	      <MirrorRules>
//	        <MirrorRule><Origin>docs</Origin><Destination>Docs</Destination></MirrorRule>
//	      </MirrorRules>
//	    </Platform>
//	  </Platforms>
//	</SetupConfig>
//
// A relative source root is resolved against the directory holding the
// rule file.
package rules
