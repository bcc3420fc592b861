// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// checkReachability is the post-assembly pass spec §4.7 requires: every
// pool reference reachable from the root must resolve, or the decode
// fails with DanglingRef. It runs after the whole model is built, rather
// than failing fast on the first bad reference, so a caller always gets
// the same error kind for this class of problem regardless of which
// reference happened to be checked first.
func checkReachability(cf *ClassFile) error {
	if err := checkPoolInternalRefs(cf.Pool); err != nil {
		return err
	}
	for _, f := range cf.Fields {
		if err := checkNameAndDescriptor(cf.Pool, f.NameIndex, f.DescriptorIndex); err != nil {
			return err
		}
	}
	for _, m := range cf.Methods {
		if err := checkNameAndDescriptor(cf.Pool, m.NameIndex, m.DescriptorIndex); err != nil {
			return err
		}
	}
	return nil
}

func checkNameAndDescriptor(pool *ConstantPool, nameIdx, descIdx int) error {
	if _, ok := pool.AsUtf8(nameIdx); !ok {
		return errDanglingRef(0, "name_index does not resolve to a Utf8 constant")
	}
	if _, ok := pool.AsUtf8(descIdx); !ok {
		return errDanglingRef(0, "descriptor_index does not resolve to a Utf8 constant")
	}
	return nil
}

// checkPoolInternalRefs walks every constant's own cross-references
// (a Class constant's name_index, a Fieldref's class_index and
// name_and_type_index, and so on) and confirms each resolves to a
// constant of the expected variant.
func checkPoolInternalRefs(pool *ConstantPool) error {
	for _, constant := range pool.entries {
		switch k := constant.(type) {
		case *ConstantClass:
			if _, ok := pool.AsUtf8(k.NameIndex); !ok {
				return errDanglingRef(0, "Class constant name_index does not resolve to Utf8")
			}
		case *ConstantString:
			if _, ok := pool.AsUtf8(k.StringIndex); !ok {
				return errDanglingRef(0, "String constant string_index does not resolve to Utf8")
			}
		case *ConstantNameAndType:
			if _, ok := pool.AsUtf8(k.NameIndex); !ok {
				return errDanglingRef(0, "NameAndType constant name_index does not resolve to Utf8")
			}
			if _, ok := pool.AsUtf8(k.DescriptorIndex); !ok {
				return errDanglingRef(0, "NameAndType constant descriptor_index does not resolve to Utf8")
			}
		case *ConstantFieldref:
			if err := checkRefClassAndNameAndType(pool, k.ClassIndex, k.NameAndTypeIndex); err != nil {
				return err
			}
		case *ConstantMethodref:
			if err := checkRefClassAndNameAndType(pool, k.ClassIndex, k.NameAndTypeIndex); err != nil {
				return err
			}
		case *ConstantInterfaceMethodref:
			if err := checkRefClassAndNameAndType(pool, k.ClassIndex, k.NameAndTypeIndex); err != nil {
				return err
			}
		case *ConstantMethodType:
			if _, ok := pool.AsUtf8(k.DescriptorIndex); !ok {
				return errDanglingRef(0, "MethodType constant descriptor_index does not resolve to Utf8")
			}
		case *ConstantModule:
			if _, ok := pool.AsUtf8(k.NameIndex); !ok {
				return errDanglingRef(0, "Module constant name_index does not resolve to Utf8")
			}
		case *ConstantPackage:
			if _, ok := pool.AsUtf8(k.NameIndex); !ok {
				return errDanglingRef(0, "Package constant name_index does not resolve to Utf8")
			}
		case *ConstantMethodHandle:
			if _, ok := pool.Get(k.ReferenceIndex); !ok {
				return errDanglingRef(0, "MethodHandle constant reference_index does not resolve")
			}
		case *ConstantDynamic:
			if _, ok := pool.AsNameAndType(k.NameAndTypeIndex); !ok {
				return errDanglingRef(0, "Dynamic constant name_and_type_index does not resolve to NameAndType")
			}
		case *ConstantInvokeDynamic:
			if _, ok := pool.AsNameAndType(k.NameAndTypeIndex); !ok {
				return errDanglingRef(0, "InvokeDynamic constant name_and_type_index does not resolve to NameAndType")
			}
		}
	}
	return nil
}

func checkRefClassAndNameAndType(pool *ConstantPool, classIdx, natIdx int) error {
	if _, ok := pool.AsClass(classIdx); !ok {
		return errDanglingRef(0, "reference constant class_index does not resolve to Class")
	}
	if _, ok := pool.AsNameAndType(natIdx); !ok {
		return errDanglingRef(0, "reference constant name_and_type_index does not resolve to NameAndType")
	}
	return nil
}
