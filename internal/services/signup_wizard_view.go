package services

// SignupStepView is the render data of the current wizard page.
type SignupStepView struct {
	Number        int
	Total         int
	Kind          SignupStep
	Title         string
	Description   string
	PrimaryAction string
	ShowBack      bool
	Final         bool
	Direction     Direction
}

func (wizard *SignupWizard) View() SignupStepView {
	kind := wizard.CurrentStep()
	view := SignupStepView{
		Number:    wizard.step,
		Total:     len(wizard.steps),
		Kind:      kind,
		ShowBack:  wizard.step > 1,
		Final:     wizard.IsFinalStep(),
		Direction: wizard.direction,
	}

	switch kind {
	case StepPersonalInfo:
		view.Title = "Personal Info"
		view.Description = "Enter your personal information to get started"
		view.PrimaryAction = "Next"
	case StepVerification:
		view.Title = "Verification"
		view.Description = "Enter the verification code sent to your phone"
		view.PrimaryAction = "Verify"
	case StepSecurity:
		view.Title = "Security"
		view.Description = "Choose a strong password for your account"
		view.PrimaryAction = "Next"
	case StepProfile:
		view.Title = "Profile"
		view.Description = "Complete your profile information"
		view.PrimaryAction = "Next"
	}
	if view.Final {
		view.PrimaryAction = "Create Account"
	}
	return view
}
