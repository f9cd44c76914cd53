package algo

import "github.com/san-kum/algoviz/internal/step"

type Shell struct{}

func NewShell() *Shell {
	return &Shell{}
}

func (a *Shell) Name() string {
	return "shell"
}

// Run uses the halving gap sequence n/2, n/4, ..., 1.
func (a *Shell) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	n := len(nums)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			if tr.Stopped() {
				return nums
			}
			tmp := nums[i]
			j := i
			for j >= gap && nums[j-gap] > tmp {
				nums[j] = nums[j-gap]
				j -= gap
				if !tr.Emit(nums, j, j+gap) {
					nums[j] = tmp
					return nums
				}
			}
			nums[j] = tmp
		}
	}
	return nums
}
