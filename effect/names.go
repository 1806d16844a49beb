package effect

import (
	"strconv"
)

func boneUniformNames() []string {
	names := make([]string, MaxBones)
	for i := range names {
		names[i] = uniformBones + "[" + strconv.Itoa(i) + "]"
	}
	return names
}
