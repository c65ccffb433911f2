package domain

// seedQuotes is the default set inserted into an empty store on first start.
var seedQuotes = []Quote{
	// sad
	{Text: "Please remember that you’re capable, brave and loved – even when it feels like you’re not.", Author: "Unknown", Feeling: "sad"},
	{Text: "Perhaps the butterfly is proof that you can go through a great deal of darkness yet become something beautiful again.", Author: "Unknown", Feeling: "sad"},
	{Text: "Never, ever, ever, ever, ever give up on yourself. As long as you keep on fighting, then you can beat your depression.", Author: "Unknown", Feeling: "sad"},
	{Text: "Just because you’re going through a rough patch, it doesn’t mean you always will be. Recovery is possible. We promise you.", Author: "Unknown", Feeling: "sad"},
	{Text: "In case no one told you today: you are beautiful. You are loved. You are needed. You are alive for a reason. You are stronger than you think, and if you keep on fighting, then you’re going to get through this.", Author: "Unknown", Feeling: "sad"},

	// anxious
	{Text: "As long as you are breathing, there is more right with you than wrong with you, no matter what is wrong.", Author: "Jon Kabat-Zinn", Feeling: "anxious"},
	{Text: "Your calm mind is the ultimate weapon against your challenges. So relax.", Author: "Bryant McGill", Feeling: "anxious"},
	{Text: "Trust yourself. You’ve survived a lot, and you’ll survive whatever is coming.", Author: "Robert Tew", Feeling: "anxious"},
	{Text: "Smile, breathe and go slowly.", Author: "Thich Nhat Hanh", Feeling: "anxious"},
	{Text: "Nothing diminishes anxiety faster than action.", Author: "Walter Anderson", Feeling: "anxious"},

	// stressed
	{Text: "The time to relax is when you don’t have time for it.", Author: "Sydney J. Harris", Feeling: "stressed"},
	{Text: "One of the best pieces of advice I ever got was from a horse master. He told me to go slow to go fast. I think that applies to everything in life. We live as though there aren’t enough hours in the day, but if we do each thing calmly and carefully, we will get it done quicker and with much less stress.", Author: "Viggo Mortensen", Feeling: "stressed"},
	{Text: "Much of the stress that people feel doesn’t come from having too much to do. It comes from not finishing what they’ve started.", Author: "David Allen", Feeling: "stressed"},
	{Text: "In times of great stress or adversity, it’s always best to keep busy, to plow your anger and your energy into something positive.", Author: "Lee Iacocca", Feeling: "stressed"},
	{Text: "Doing something that is productive is a great way to alleviate emotional stress. Get your mind doing something that is productive.", Author: "Ziggy Marley", Feeling: "stressed"},

	// unmotivated
	{Text: "If you can dream it, you can do it.", Author: "Walt Disney", Feeling: "unmotivated"},
	{Text: "Keep your eyes on the stars, and your feet on the ground.", Author: "Theodore Roosevelt", Feeling: "unmotivated"},
	{Text: "You’ve got to get up every morning with determination if you’re going to go to bed with satisfaction.", Author: "George Lorimer", Feeling: "unmotivated"},
	{Text: "Success is not final; failure is not fatal: It is the courage to continue that counts.", Author: "Winston Churchill", Feeling: "unmotivated"},
	{Text: "It’s not whether you get knocked down. It’s whether you get up.", Author: "Vince Lombardi", Feeling: "unmotivated"},

	// aggravated
	{Text: "For every minute you remain angry, you give up sixty seconds of peace of mind.", Author: "Ralph Waldo Emerson", Feeling: "aggravated"},
	{Text: "Speak when you are angry and you will make the best speech you will ever regret.", Author: "Ambrose Bierce", Feeling: "aggravated"},
	{Text: "Holding on to anger is like grasping a hot coal with the intent of throwing it at someone else; you are the one who gets burned.", Author: "Buddha", Feeling: "aggravated"},
	{Text: "Anger is an acid that can do more harm to the vessel in which it is stored than to anything on which it is poured.", Author: "Mark Twain", Feeling: "aggravated"},

	// resentful
	{Text: "Resentment is like drinking poison and then hoping it will kill your enemies.", Author: "Nelson Mandela", Feeling: "resentful"},
	{Text: "The weak can never forgive. Forgiveness is the attribute of the strong.", Author: "Mahatma Gandhi", Feeling: "resentful"},
	{Text: "To forgive is to set a prisoner free and discover that the prisoner was you.", Author: "Lewis B. Smedes", Feeling: "resentful"},
	{Text: "Forgiveness does not change the past, but it does enlarge the future.", Author: "Paul Boese", Feeling: "resentful"},

	// appalled
	{Text: "The world is a dangerous place, not because of those who do evil, but because of those who look on and do nothing.", Author: "Albert Einstein", Feeling: "appalled"},
	{Text: "In a gentle way, you can shake the world.", Author: "Mahatma Gandhi", Feeling: "appalled"},
	{Text: "Darkness cannot drive out darkness; only light can do that. Hate cannot drive out hate; only love can do that.", Author: "Martin Luther King Jr.", Feeling: "appalled"},
	{Text: "Never doubt that a small group of thoughtful, committed citizens can change the world; indeed, it’s the only thing that ever has.", Author: "Margaret Mead", Feeling: "appalled"},

	// confused
	{Text: "Confusion is a word we have invented for an order which is not understood.", Author: "Henry Miller", Feeling: "confused"},
	{Text: "Not all those who wander are lost.", Author: "J.R.R. Tolkien", Feeling: "confused"},
	{Text: "Life can only be understood backwards; but it must be lived forwards.", Author: "Søren Kierkegaard", Feeling: "confused"},
	{Text: "The only true wisdom is in knowing you know nothing.", Author: "Socrates", Feeling: "confused"},

	// apathetic
	{Text: "The opposite of love is not hate, it’s indifference.", Author: "Elie Wiesel", Feeling: "apathetic"},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James", Feeling: "apathetic"},
	{Text: "What you do makes a difference, and you have to decide what kind of difference you want to make.", Author: "Jane Goodall", Feeling: "apathetic"},
	{Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe", Feeling: "apathetic"},

	// agitated
	{Text: "Within you, there is a stillness and a sanctuary to which you can retreat at any time and be yourself.", Author: "Hermann Hesse", Feeling: "agitated"},
	{Text: "Almost everything will work again if you unplug it for a few minutes, including you.", Author: "Anne Lamott", Feeling: "agitated"},
	{Text: "You have power over your mind, not outside events. Realize this, and you will find strength.", Author: "Marcus Aurelius", Feeling: "agitated"},
	{Text: "Feelings come and go like clouds in a windy sky. Conscious breathing is my anchor.", Author: "Thich Nhat Hanh", Feeling: "agitated"},

	// ashamed
	{Text: "Shame cannot survive being spoken.", Author: "Brené Brown", Feeling: "ashamed"},
	{Text: "Our greatest glory is not in never falling, but in rising every time we fall.", Author: "Confucius", Feeling: "ashamed"},
	{Text: "You are imperfect, permanently and inevitably flawed. And you are beautiful.", Author: "Amy Bloom", Feeling: "ashamed"},

	// exhausted
	{Text: "Rest when you’re weary. Refresh and renew yourself, your body, your mind, your spirit. Then get back to work.", Author: "Ralph Marston", Feeling: "exhausted"},
	{Text: "Sometimes the most productive thing you can do is relax.", Author: "Mark Black", Feeling: "exhausted"},
	{Text: "Take rest; a field that has rested gives a bountiful crop.", Author: "Ovid", Feeling: "exhausted"},
}

// SeedQuotes returns a copy of the default quote set.
// Callers may modify the returned slice freely.
func SeedQuotes() []Quote {
	out := make([]Quote, len(seedQuotes))
	copy(out, seedQuotes)

	return out
}
