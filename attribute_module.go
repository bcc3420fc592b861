// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// ModuleRequiresEntry is one row of a Module attribute's requires table.
type ModuleRequiresEntry struct {
	RequiresIndex        int
	RequiresFlags        []ModuleRequiresFlag
	RequiresVersionIndex int
}

// ModuleExportsEntry is one row of a Module attribute's exports table.
type ModuleExportsEntry struct {
	ExportsIndex int
	ExportsFlags []ModuleExportsFlag
	ExportsTo    []int
}

// ModuleOpensEntry is one row of a Module attribute's opens table; same
// shape as ModuleExportsEntry (spec §4.5).
type ModuleOpensEntry struct {
	OpensIndex int
	OpensFlags []ModuleExportsFlag
	OpensTo    []int
}

// ModuleProvidesEntry is one row of a Module attribute's provides table.
type ModuleProvidesEntry struct {
	ProvidesIndex int
	ProvidesWith  []int
}

// ModuleAttribute describes a module declaration: its own identity plus
// the requires/exports/opens/uses/provides directives (spec §4.5).
type ModuleAttribute struct {
	attributeBase
	ModuleNameIndex    int
	ModuleFlags        []ModuleFlag
	ModuleVersionIndex int
	Requires           []ModuleRequiresEntry
	Exports            []ModuleExportsEntry
	Opens              []ModuleOpensEntry
	Uses               []int
	Provides           []ModuleProvidesEntry
}

func decodeModuleAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	nameIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	flagsMask, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	versionIdx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}

	requiresCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	requires := make([]ModuleRequiresEntry, requiresCount)
	for i := range requires {
		reqIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		reqFlags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		reqVersionIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		requires[i] = ModuleRequiresEntry{
			RequiresIndex:        int(reqIdx),
			RequiresFlags:        DecodeModuleRequiresFlags(reqFlags),
			RequiresVersionIndex: int(reqVersionIdx),
		}
	}

	exportsCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	exports := make([]ModuleExportsEntry, exportsCount)
	for i := range exports {
		expIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		expFlags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		toCount, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := readU16Indices(c, int(toCount))
		if err != nil {
			return nil, err
		}
		exports[i] = ModuleExportsEntry{
			ExportsIndex: int(expIdx),
			ExportsFlags: DecodeModuleExportsFlags(expFlags),
			ExportsTo:    to,
		}
	}

	opensCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	opens := make([]ModuleOpensEntry, opensCount)
	for i := range opens {
		opensIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		opensFlags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		toCount, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := readU16Indices(c, int(toCount))
		if err != nil {
			return nil, err
		}
		opens[i] = ModuleOpensEntry{
			OpensIndex: int(opensIdx),
			OpensFlags: DecodeModuleOpensFlags(opensFlags),
			OpensTo:    to,
		}
	}

	usesCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	uses, err := readU16Indices(c, int(usesCount))
	if err != nil {
		return nil, err
	}

	providesCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	provides := make([]ModuleProvidesEntry, providesCount)
	for i := range provides {
		provIdx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		withCount, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		with, err := readU16Indices(c, int(withCount))
		if err != nil {
			return nil, err
		}
		provides[i] = ModuleProvidesEntry{ProvidesIndex: int(provIdx), ProvidesWith: with}
	}

	return &ModuleAttribute{
		attributeBase:      attributeBase{name: "Module"},
		ModuleNameIndex:    int(nameIdx),
		ModuleFlags:        DecodeModuleFlags(flagsMask),
		ModuleVersionIndex: int(versionIdx),
		Requires:           requires,
		Exports:            exports,
		Opens:              opens,
		Uses:               uses,
		Provides:           provides,
	}, nil
}

// ModulePackagesAttribute lists every package of a module, including
// those not exported or opened.
type ModulePackagesAttribute struct {
	attributeBase
	Packages []int
}

func decodeModulePackagesAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	indices, err := readU16Indices(c, int(count))
	if err != nil {
		return nil, err
	}
	return &ModulePackagesAttribute{attributeBase: attributeBase{name: "ModulePackages"}, Packages: indices}, nil
}

// ModuleMainClassAttribute names a module's default launch class.
type ModuleMainClassAttribute struct {
	attributeBase
	MainClassIndex int
}

func decodeModuleMainClassAttribute(c *Cursor, _ *decodeState, _ uint32) (Attribute, error) {
	idx, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return &ModuleMainClassAttribute{attributeBase: attributeBase{name: "ModuleMainClass"}, MainClassIndex: int(idx)}, nil
}
